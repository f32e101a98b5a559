package main

import (
	"anagrams/internal/appshell"
	"anagrams/internal/bestapp"
)

func main() { appshell.Main(bestapp.RunContext) }
