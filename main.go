package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/tuboc/chip8vm/emulator"
	"github.com/tuboc/chip8vm/host"
)

const usage = "chip8vm [-frontend sdl|ebiten|term] [-scale N] romfile"

// exitUsage is EX_USAGE from sysexits.h.
const exitUsage = 64

var frontend = flag.String("frontend", "sdl", "display frontend: sdl, ebiten or term")
var scale = flag.Int("scale", 10, "window pixel scale")

func init() {
	runtime.LockOSThread()
}

func init() {
	exe, _ := os.Executable()
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("%s: ", filepath.Base(exe)))
	log.SetOutput(os.Stderr)
}

func main() {
	flag.Parse()
	os.Exit(run(flag.Args()))
}

func run(args []string) int {
	if len(args) != 1 {
		log.Println(usage)
		return exitUsage
	}

	filename := args[0]
	if _, err := os.Stat(filename); err != nil {
		log.Printf("ERROR: Couldn't find file: %s", filename)
		return exitUsage
	}

	binary, err := os.ReadFile(filename)
	if err != nil {
		log.Println(err)
		return 1
	}

	c := emulator.New()
	if err := c.Load(binary); err != nil {
		log.Println(err)
		return 1
	}

	f, err := host.Open(*frontend, *scale)
	if errors.Is(err, host.ErrUnknownFrontend) {
		log.Println(err)
		log.Println(usage)
		return exitUsage
	} else if err != nil {
		log.Println(err)
		return 1
	}

	err = host.Run(c, f)
	f.Close()
	if err != nil {
		log.Printf("halted: %v", err)
		var fault *emulator.Fault
		if errors.As(err, &fault) {
			for _, e := range c.Trace() {
				log.Printf("  %v", e)
			}
		}
		return 1
	}
	return 0
}
