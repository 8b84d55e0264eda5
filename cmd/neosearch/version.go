package main

import (
	"context"
	"fmt"

	"github.com/a-h/neosearch"
)

type VersionCommand struct {
}

func (c VersionCommand) Run(ctx context.Context) (err error) {
	fmt.Println(neosearch.Version)
	return nil
}
