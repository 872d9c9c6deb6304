package main

import "github.com/kalorieapp/kalorie-cli/cmd/kalorie"

func main() {
	kalorie.Execute()
}
