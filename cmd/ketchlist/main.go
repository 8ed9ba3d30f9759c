// Package main provides the ketchlist CLI for generating password wordlists.
package main

func main() {
	Execute()
}
