package audio

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"
	"github.com/pkg/errors"
)

// resampleQuality is the beep.Resample interpolation quality for assets at a foreign rate
const resampleQuality = 4

// outputFormat is the buffer format every cue is normalized to
func outputFormat(rate beep.SampleRate) beep.Format {
	return beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
}

// LoadAsset decodes a .wav or .mp3 file fully into memory at the given rate
func LoadAsset(path string, rate beep.SampleRate) (*beep.Buffer, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".wav" && ext != ".mp3" {
		return nil, errors.Wrapf(ErrUnsupportedFormat, "asset %q", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open audio asset")
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	}
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "decode %s asset", ext)
	}
	defer streamer.Close()

	return bufferStream(streamer, format.SampleRate, rate)
}

// SynthesizeExplosion renders the synthesized burst into a buffer
func SynthesizeExplosion(rate beep.SampleRate) (*beep.Buffer, error) {
	s, err := NewExplosion(rate)
	if err != nil {
		return nil, errors.Wrap(err, "synthesize explosion")
	}
	return bufferStream(s, rate, rate)
}

// bufferStream drains s into a buffer, resampling when rates differ
func bufferStream(s beep.Streamer, from, to beep.SampleRate) (*beep.Buffer, error) {
	if from != to {
		s = beep.Resample(resampleQuality, from, to, s)
	}
	buf := beep.NewBuffer(outputFormat(to))
	buf.Append(s)
	if err := s.Err(); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "buffer audio stream")
	}
	return buf, nil
}
