/*
Copyright © 2025 jagadeeshwarid
*/
package main

import (
	"github.com/jagadeeshwarid/TaskTrackerPro/cmd"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; config has defaults and reads real env vars too.
	_ = godotenv.Load()

	cmd.Execute()
}
