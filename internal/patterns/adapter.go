package patterns

import (
	"fmt"
	"io"
	"strings"
)

// MediaPlayer is the interface clients use.
type MediaPlayer interface {
	Play(audioType, fileName string)
}

// AdvancedMediaPlayer is the interface being adapted.
type AdvancedMediaPlayer interface {
	PlayVlc(fileName string)
	PlayMp4(fileName string)
}

// VlcPlayer only plays VLC files.
type VlcPlayer struct {
	w io.Writer
}

func (p VlcPlayer) PlayVlc(fileName string) {
	fmt.Fprintf(p.w, "Playing VLC file. Name: %s\n", fileName)
}

func (p VlcPlayer) PlayMp4(string) {}

// Mp4Player only plays MP4 files.
type Mp4Player struct {
	w io.Writer
}

func (p Mp4Player) PlayVlc(string) {}

func (p Mp4Player) PlayMp4(fileName string) {
	fmt.Fprintf(p.w, "Playing MP4 file. Name: %s\n", fileName)
}

// MediaAdapter lets an AdvancedMediaPlayer serve as a MediaPlayer.
type MediaAdapter struct {
	advanced AdvancedMediaPlayer
}

// NewMediaAdapter picks the advanced player for audioType. It returns nil
// for formats no advanced player handles.
func NewMediaAdapter(audioType string, w io.Writer) *MediaAdapter {
	switch strings.ToLower(audioType) {
	case "vlc":
		return &MediaAdapter{advanced: VlcPlayer{w: w}}
	case "mp4":
		return &MediaAdapter{advanced: Mp4Player{w: w}}
	default:
		return nil
	}
}

// Play implements MediaPlayer.
func (a *MediaAdapter) Play(audioType, fileName string) {
	switch strings.ToLower(audioType) {
	case "vlc":
		a.advanced.PlayVlc(fileName)
	case "mp4":
		a.advanced.PlayMp4(fileName)
	}
}

// AudioPlayer plays MP3 itself and hands VLC and MP4 to an adapter.
type AudioPlayer struct {
	w io.Writer
}

// NewAudioPlayer creates a player reporting to w.
func NewAudioPlayer(w io.Writer) *AudioPlayer {
	return &AudioPlayer{w: w}
}

// Play implements MediaPlayer.
func (p *AudioPlayer) Play(audioType, fileName string) {
	if strings.EqualFold(audioType, "mp3") {
		fmt.Fprintf(p.w, "Playing MP3 file. Name: %s\n", fileName)
		return
	}
	if adapter := NewMediaAdapter(audioType, p.w); adapter != nil {
		adapter.Play(audioType, fileName)
		return
	}
	fmt.Fprintln(p.w, "Invalid media type. VLC and MP4 supported.")
}

// RunAdapterDemo plays one file of each supported type and one unsupported file.
func RunAdapterDemo(w io.Writer) error {
	var player MediaPlayer = NewAudioPlayer(w)

	player.Play("mp3", "song.mp3")
	player.Play("mp4", "video.mp4")
	player.Play("vlc", "movie.vlc")
	player.Play("avi", "myMovie.avi")
	return nil
}
