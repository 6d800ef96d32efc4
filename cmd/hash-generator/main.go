// Command hash-generator prints bcrypt hashes for the passwords given as
// arguments. Useful for seeding user rows into the database by hand.
package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: hash-generator <password> [password...]")
		os.Exit(1)
	}

	for _, password := range os.Args[1:] {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error generating hash for %s: %v\n", password, err)
			continue
		}
		fmt.Printf("%s\n", string(hash))
	}
}
