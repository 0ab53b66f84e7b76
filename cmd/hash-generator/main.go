// Command hash-generator prints bcrypt hashes for the given passwords, for
// seeding users directly into the database.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/devsprint/devsprint-api/internal/domain"
	"github.com/devsprint/devsprint-api/internal/service/auth"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("hash-generator", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cost := fs.Int("cost", bcrypt.DefaultCost, "bcrypt cost")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "usage: hash-generator [-cost N] password...")
		return 2
	}

	hasher := auth.NewBcryptHasher(*cost)
	status := 0
	for _, password := range fs.Args() {
		if len(password) < domain.MinPasswordLength || len(password) > domain.MaxPasswordLength {
			fmt.Fprintf(stderr, "skipping password of length %d: must be %d-%d characters\n",
				len(password), domain.MinPasswordLength, domain.MaxPasswordLength)
			status = 1
			continue
		}
		hash, err := hasher.Hash(password)
		if err != nil {
			fmt.Fprintf(stderr, "error generating hash: %v\n", err)
			status = 1
			continue
		}
		fmt.Fprintln(stdout, hash)
	}
	return status
}
