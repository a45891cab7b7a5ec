package main

import (
	"fmt"
	"log"
	"os"

	"mintfire.backend/pkg/crypto"
)

// Seeds the first admin credential: generate a hash here and insert it
// into admin_credentials by hand.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: genhash <password>")
	}

	hash, err := crypto.HashPassword(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(hash)
}
