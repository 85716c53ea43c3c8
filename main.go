package main

import (
	"nexora.io/infrastructure"
	"nexora.io/infrastructure/env"
)

func init() {
	env.LoadEnv()
}

func main() {
	infrastructure.StartServer()
}
