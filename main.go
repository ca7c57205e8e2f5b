package main

import (
	"log"

	"campus-pop/cmd"
	_ "campus-pop/migrations"
)

func main() {
	if err := cmd.Start(); err != nil {
		log.Fatal(err)
	}
}
