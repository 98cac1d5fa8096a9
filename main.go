package main

import "github.com/takayoshiwatanabe-create/fittracker-mobile/cmd/fittracker"

func main() {
	fittracker.Execute()
}
