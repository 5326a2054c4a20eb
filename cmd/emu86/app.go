package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/emu86/emu86/arch"
	"github.com/emu86/emu86/mem"
)

// registerOrder lists the register file in catalog order for display.
var registerOrder = []arch.Register{
	arch.AX, arch.BX, arch.CX, arch.DX,
	arch.AL, arch.BL, arch.CL, arch.DL,
	arch.AH, arch.BH, arch.CH, arch.DH,
	arch.EAX, arch.EBX, arch.ECX, arch.EDX,
	arch.ESP, arch.EBP,
}

// App defines application context.
type App struct {
	config *Config    // Application configuration.
	store  *mem.Store // Memory bank the image is loaded into.
}

// NewApp creates a new application instance using the given configuration.
func NewApp(config *Config) *App {
	return &App{
		config: config,
		store:  mem.New(),
	}
}

// Run loads the configured image into a fresh store and prints the
// requested memory and register state.
func (a *App) Run() error {
	log.Println(Version())

	if err := a.loadImage(); err != nil {
		return err
	}

	if a.config.Registers {
		a.printRegisters()
	}

	return a.printMemory()
}

// loadImage reads the image file and copies it into the store.
func (a *App) loadImage() error {
	data, err := os.ReadFile(a.config.Image)
	if err != nil {
		return errors.Wrapf(err, "failed to read %q", a.config.Image)
	}

	if err := a.store.Load(a.config.Origin, data); err != nil {
		return errors.Wrapf(err, "failed to load %q", a.config.Image)
	}

	log.Printf("loaded %d bytes at %04x", len(data), a.config.Origin)
	return nil
}

// printRegisters prints each register with its offset, width and value.
func (a *App) printRegisters() {
	for _, r := range registerOrder {
		addr, err := a.store.AddressOf(r)
		if err != nil {
			log.Println(err)
			continue
		}

		value, err := a.store.ReadRegister(r)
		if err != nil {
			log.Println(err)
			continue
		}

		size := arch.RegisterSize(r)
		fmt.Printf("%4s @%04x %s % d\n", r, addr, arch.SizeName(size), value)
	}
}

// printMemory hex dumps the configured window of memory.
func (a *App) printMemory() error {
	count := a.config.DumpBytes
	if count <= 0 {
		return nil
	}
	if a.config.Origin+count > mem.StoreCapacity {
		count = mem.StoreCapacity - a.config.Origin
	}

	buf := make([]byte, count)
	if err := a.store.Dump(a.config.Origin, buf); err != nil {
		return err
	}

	var sb strings.Builder
	for i, b := range buf {
		if i%16 == 0 {
			if i > 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString(fmt.Sprintf("%04x ", a.config.Origin+i))
		}
		sb.WriteString(fmt.Sprintf(" %02x", b))
	}

	fmt.Println(sb.String())
	return nil
}
