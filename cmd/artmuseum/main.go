package main

import "github.com/dbsmedya/artmuseum/cmd/artmuseum/cmd"

func main() {
	cmd.Execute()
}
