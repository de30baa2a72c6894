package main

import "teaching_platform_backend/cmd"

func main() {
	cmd.Execute()
}
