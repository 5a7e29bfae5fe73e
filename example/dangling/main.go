package main

import (
	"Byte_View"
	"Byte_View/arena"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	// Walks through safe and dangling views, with the arena standing in for the heap.
	poison := flag.Uint("poison", uint(arena.DefaultPoison), "byte written over freed blocks")
	quarantine := flag.Int("quarantine", 0, "freed blocks held back from reuse")
	poolBytes := flag.Int64("pool-bytes", 1<<20, "bytes kept for reuse, <=0 is unbounded")
	verbose := flag.Bool("verbose", false, "log arena events at debug level")
	flag.Parse()

	if *poison > 0xFF {
		fmt.Println("invalid poison: must fit in one byte")
		os.Exit(1)
	}
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	a := arena.New(
		arena.WithPoison(byte(*poison)),
		arena.WithQuarantine(*quarantine),
		arena.WithPoolBytes(*poolBytes),
	)
	err := run(a)
	a.Close()
	if err != nil {
		fmt.Printf("dangling demo error: %v\n", err)
		os.Exit(1)
	}
}

func run(a *arena.Arena) error {
	str := []byte("hello world")
	// str[0:5) == "hello", str[6:11) == "world"
	s1 := Byte_View.FromPointer(&str[0], 5)
	s2 := Byte_View.FromPointer(&str[6], 5)
	fmt.Printf("s1: %s\n", s1)
	fmt.Printf("s2: %s\n", s2)

	var s3, s4 Byte_View.ByteView
	{
		// 字符串字面量存放在静态区，视图始终有效
		s3 = Byte_View.FromString("abc")

		def, err := a.AllocString("def")
		if err != nil {
			return err
		}
		s4 = def.View()
		fmt.Printf("s4: %s\n", s4)
		if err := a.Free(def); err != nil {
			return err
		}
	}

	hhh, err := a.AllocString("hhh")
	if err != nil {
		return err
	}

	fmt.Printf("s3: %s (%s)\n", s3, verdict(a, s3))
	fmt.Printf("s4: %q (%s)\n", s4, verdict(a, s4))
	return a.Free(hhh)
}

func verdict(a *arena.Arena, v Byte_View.ByteView) string {
	if err := a.Check(v); err != nil {
		return err.Error()
	}
	return "not flagged"
}
