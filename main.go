package main

import "github.com/aoai-workshop/secretscan/cmd/secretscan"

func main() { secretscan.Execute() }
