package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/pixelplane/pixo/demo"
	"github.com/pixelplane/pixo/gfx"
	"github.com/pixelplane/pixo/resource"
	"github.com/pixelplane/pixo/ui"
)

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
var scale = flag.Int("scale", 0, "window scale factor, overrides the saved setting")

func usage() {
	fmt.Println("pixo, a retro pixel engine")
	fmt.Println("usage:")
	fmt.Println("    pixo view [-bank N] RESOURCE_FILE(.pixres)")
	fmt.Println("    pixo pack SRC_FILE(.yaml) OUT_FILE(.pixres)")
	fmt.Println("    pixo unpack RESOURCE_FILE(.pixres) OUT_FILE(.yaml)")
	fmt.Println("    pixo demo")
	os.Exit(2)
}

func main() {
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	switch flag.Arg(0) {
	case "view":
		filename, bank, err := parseViewArgs(flag.Args()[1:])
		if err != nil {
			usage()
		}
		runView(filename, bank)
	case "pack":
		if flag.NArg() != 3 {
			usage()
		}
		runPack(flag.Arg(1), flag.Arg(2))
	case "unpack":
		if flag.NArg() != 3 {
			usage()
		}
		runUnpack(flag.Arg(1), flag.Arg(2))
	case "demo":
		runDemo()
	default:
		usage()
	}
}

func loadSettings() *ui.Settings {
	manager, err := gdata.Open(gdata.Config{AppName: "pixo"})
	if err != nil {
		manager = nil
	}
	settingsManager := ui.NewSettingsManager(manager)
	if err := settingsManager.Load(); err != nil {
		log.Printf("Cannot load settings (%v), using defaults", err)
	}
	settings := settingsManager.Settings()
	if *scale > 0 {
		settings.Scale = *scale
		if err := settingsManager.Save(); err != nil {
			log.Printf("Cannot save settings (%v)", err)
		}
	}
	return settings
}

func runGame(game *ui.Game, title string, settings *ui.Settings) {
	size := game.Screen().Size()
	game.SetSoundEnabled(settings.SoundEnabled)
	ebiten.SetWindowSize(size.X*settings.Scale, size.Y*settings.Scale)
	ebiten.SetWindowTitle(title)
	if err := ebiten.RunGame(game); err != nil {
		fmt.Println(err.Error())
	}
}

func runDemo() {
	game, err := demo.NewGame()
	if err != nil {
		log.Fatalf("Cannot build demo scene (%v)", err)
	}
	runGame(game, "pixo demo", loadSettings())
}

// bankView shows one image bank of a resource, no interaction.
type bankView struct {
	bank *gfx.Image
}

func (v *bankView) Update(input *ui.Input) {}

func (v *bankView) Draw(screen *gfx.Image) {
	size := v.bank.Size()
	screen.Blt(0, 0, v.bank, 0, 0, size.X, size.Y, -1)
}

func parseViewArgs(args []string) (filename string, bank int, err error) {
	flags := flag.NewFlagSet("view", flag.ContinueOnError)
	bankFlag := flags.Int("bank", 0, "image bank to show")
	if err := flags.Parse(args); err != nil {
		return "", 0, err
	}
	if flags.NArg() != 1 {
		return "", 0, fmt.Errorf("expected one resource file, got %d arguments", flags.NArg())
	}
	return flags.Arg(0), *bankFlag, nil
}

func runView(filename string, bank int) {
	res, err := resource.LoadFile(filename)
	if err != nil {
		log.Fatalf("Cannot load resource file %s (%v)", filename, err)
	}
	if bank < 0 || bank >= len(res.Banks) {
		log.Fatalf("Resource has no bank %d, %d banks present", bank, len(res.Banks))
	}
	shownBank := res.Banks[bank]
	root := ui.NewRoot()
	root.Add(&bankView{bank: shownBank})

	size := shownBank.Size()
	screen := gfx.NewImage(size.X, size.Y)
	screen.Palette().SetColors(res.Colors)
	runGame(ui.NewGame(screen, root), filename, loadSettings())
}

func runPack(srcname, outname string) {
	data, err := os.ReadFile(srcname)
	if err != nil {
		log.Fatalf("Cannot read file %s (%v)", srcname, err)
	}
	res, err := resource.Decode(data)
	if err != nil {
		log.Fatalf("Cannot decode resource data from %s (%v)", srcname, err)
	}
	if err := res.SaveFile(outname); err != nil {
		log.Fatalf("Cannot write resource file %s (%v)", outname, err)
	}
}

func runUnpack(srcname, outname string) {
	res, err := resource.LoadFile(srcname)
	if err != nil {
		log.Fatalf("Cannot load resource file %s (%v)", srcname, err)
	}
	data, err := res.Encode()
	if err != nil {
		log.Fatalf("Cannot encode resource data (%v)", err)
	}
	if err := os.WriteFile(outname, data, 0644); err != nil {
		log.Fatalf("Cannot write file %s (%v)", outname, err)
	}
}
