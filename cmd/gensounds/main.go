// Command gensounds writes the game's synthesized sound effects to WAV
// files so they can be auditioned or reused outside the game.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/ayusman/balloonpop/internal/audio"
)

func main() {
	out := flag.String("out", "sounds", "output directory for the WAV files")
	flag.Parse()

	if err := os.MkdirAll(*out, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	format := beep.Format{
		SampleRate:  audio.SampleRate,
		NumChannels: 2,
		Precision:   2,
	}

	sounds := []audio.Sound{audio.SoundShoot, audio.SoundPop, audio.SoundWin, audio.SoundLose}
	for _, s := range sounds {
		path := filepath.Join(*out, s.String()+".wav")
		if err := writeWAV(path, s.Streamer(), format); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
		fmt.Printf("Wrote %s\n", path)
	}
}

func writeWAV(path string, s beep.Streamer, format beep.Format) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := wav.Encode(f, s, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
