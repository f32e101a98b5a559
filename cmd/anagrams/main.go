package main

import (
	"anagrams/internal/app"
	"anagrams/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
