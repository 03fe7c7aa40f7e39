package main

import "github.com/Phoenixs77/CarletonCalendar/cmd"

func main() {
	cmd.Execute()
}
