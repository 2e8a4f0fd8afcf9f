package main

import "github.com/MeKo-Tech/sparsenms/cmd/sparsenms/cmd"

func main() {
	cmd.Execute()
}
