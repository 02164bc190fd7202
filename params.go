package main

import (
	"flag"
	"fmt"
	"os"
	"time"
)

const defaultPingTimeout = 10 * time.Second

type commandParams struct {
	dir     string
	timeout time.Duration
	asUser  bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.dir, "dir", ".", "directory whose test.properties hierarchy to resolve")
	fs.DurationVar(&c.timeout, "timeout", defaultPingTimeout, "how long to wait for the backend to answer")
	fs.BoolVar(&c.asUser, "as-user", false, "connect with the configured tck.username/tck.password credentials")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	return true
}
