package main

import (
	"flag"
	"fmt"
	"log"

	"trade-admin.backend/pkg/crypto"
)

// Generates a bcrypt hash for provisioning admin accounts by hand.
func main() {
	password := flag.String("password", "", "password to hash")
	flag.Parse()

	if *password == "" {
		log.Fatal("usage: hash-gen -password <password>")
	}

	hash, err := crypto.HashPassword(*password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	fmt.Println(hash)
}
