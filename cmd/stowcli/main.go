// Command stowcli is a minimal front-end over the stowdb engine:
// get/set/rm subcommands against a file given by -db, plus --version.
// It implements the front-end conventions stowdb's engine leaves
// unspecified: exit codes, and printing "Key not found" on a missing key.
package main

import (
	"flag"
	"fmt"
	"os"

	stowerrors "stowdb/pkg/errors"
	"stowdb/pkg/stowdb"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := flag.NewFlagSet("stowcli", flag.ContinueOnError)
	dbPath := flags.String("db", "test.db", "path to the store file or directory")
	showVersion := flags.Bool("version", false, "print the stowcli version and exit")

	if err := flags.Parse(args); err != nil {
		return 2
	}
	if *showVersion {
		fmt.Println("stowcli", version)
		return 0
	}

	rest := flags.Args()
	if len(rest) == 0 {
		fmt.Fprintln(os.Stderr, "usage: stowcli [-db path] <get|set|rm> ...")
		return 2
	}

	db, err := stowdb.Open(*dbPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "open:", err)
		return 1
	}
	defer db.Close()

	switch rest[0] {
	case "get":
		return runGet(db, rest[1:])
	case "set":
		return runSet(db, rest[1:])
	case "rm":
		return runRemove(db, rest[1:])
	default:
		fmt.Fprintln(os.Stderr, "unknown command:", rest[0])
		return 2
	}
}

func runGet(db *stowdb.DB, args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: stowcli get <key>")
		return 2
	}
	value, ok, err := db.Get(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "get:", err)
		return 1
	}
	if !ok {
		fmt.Println("Key not found")
		return 0
	}
	fmt.Println(value)
	return 0
}

func runSet(db *stowdb.DB, args []string) int {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: stowcli set <key> <value>")
		return 2
	}
	if err := db.Set(args[0], args[1]); err != nil {
		fmt.Fprintln(os.Stderr, "set:", err)
		return 1
	}
	return 0
}

func runRemove(db *stowdb.DB, args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: stowcli rm <key>")
		return 2
	}
	if err := db.Remove(args[0]); err != nil {
		if err == stowerrors.ErrKeyNotFound {
			fmt.Println("Key not found")
			return 1
		}
		fmt.Fprintln(os.Stderr, "rm:", err)
		return 1
	}
	return 0
}
