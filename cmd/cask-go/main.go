package main

import (
	"fmt"
	"log"

	"github.com/cask-crypto/cask-go/pkg/cask"
	"github.com/cask-crypto/cask-go/pkg/cask/aes"
	"github.com/cask-crypto/cask-go/pkg/cask/hash"
)

func main() {
	log.Printf("cask-go version: %s", cask.ModuleVersion())

	fmt.Println("registered hash algorithms:")
	for _, name := range hash.Algorithms() {
		algo, err := hash.Lookup(name)
		if err != nil {
			log.Fatalf("registry inconsistency: %v", err)
		}
		fmt.Printf("  %-12s digest=%d block=%d\n", name, algo.DigestSize(), algo.BlockSize())
	}

	fmt.Println("supported AES modes:")
	for _, mode := range aes.SupportedModes() {
		kind := "composed"
		if mode.IsAEAD() {
			kind = "native"
		}
		fmt.Printf("  %-4s %s\n", mode, kind)
	}
}
