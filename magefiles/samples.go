//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// authorSamples are raw fields in the conventions the normalizer handles.
var authorSamples = []string{
	"Sullivan, William",
	"Ray Yao, Ada R. Swift, and Ruby C. Perl",
	"Maurya, Rahul; Maurya, Rahul",
	"Chrysostom, John, St.",
	"Mighton, John, Jump Math",
	"Casey, Elle [Casey, Elle]",
	"By Winston Churchill, Illustrated by J.H. Gardner Soper",
	"Составитель - Sheila Pemberton. Русский Текст - И. Б. Соболева. Иллюстрации - Val Biro.",
	"Jaime González García, Artur Mizera",
}

// Samples builds the CLI and prints the author report for each sample field.
func Samples() error {
	mg.Deps(Build)
	for _, raw := range authorSamples {
		fmt.Println("----")
		if err := sh.RunV("./"+binDir+"/"+binName, "authors", raw); err != nil {
			return err
		}
	}
	return nil
}
