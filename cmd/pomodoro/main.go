package main

import "pomodoro/solanum/internal/cli"

func main() {
	cli.Execute()
}
