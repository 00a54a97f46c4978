package patterns

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"astro-schedule/internal/errors"
)

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestDemos_Output(t *testing.T) {
	tests := []struct {
		name string
		want []string
	}{
		{
			name: "command",
			want: []string{"The light is ON", "The fan is OFF"},
		},
		{
			name: "observer",
			want: []string{
				"Trader Alice: The price of Apple has changed to 155.0.",
				"Trader Bob: The price of Apple has changed to 155.0.",
				"Trader Alice: The price of Apple has changed to 160.0.",
				"Trader Bob: The price of Apple has changed to 160.0.",
			},
		},
		{
			name: "factory",
			want: []string{"Dog says: Woof Woof!", "Cat says: Meow!", "Duck says: Quack!"},
		},
		{
			name: "singleton",
			want: []string{
				"Establishing Database Connection...",
				"Executing query: SELECT * FROM Users",
				"Executing query: SELECT * FROM Orders",
				"Same instance",
			},
		},
		{
			name: "adapter",
			want: []string{
				"Playing MP3 file. Name: song.mp3",
				"Playing MP4 file. Name: video.mp4",
				"Playing VLC file. Name: movie.vlc",
				"Invalid media type. VLC and MP4 supported.",
			},
		},
		{
			name: "decorator",
			want: []string{
				"Simple Coffee Cost: $5.0",
				"Simple Coffee, Milk Cost: $6.5",
				"Simple Coffee, Milk, Sugar Cost: $7.0",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Run(&buf, tt.name))
			assert.Equal(t, tt.want, lines(buf.String()))
		})
	}
}

func TestRun_All(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Run(&buf, "ALL"))

	out := buf.String()
	for _, name := range Names() {
		assert.Contains(t, out, "== "+name+" ==")
	}
	assert.True(t, strings.HasPrefix(out, "== command ==\nThe light is ON\n"))
	assert.True(t, strings.HasSuffix(out, "Simple Coffee, Milk, Sugar Cost: $7.0\n"))
}

func TestRun_Unknown(t *testing.T) {
	var buf bytes.Buffer
	err := Run(&buf, "visitor")
	assert.ErrorIs(t, err, errors.ErrNotFound)
	assert.Empty(t, buf.String())
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"command", "observer", "factory", "singleton", "adapter", "decorator"}, Names())
	assert.Len(t, Demos(), 6)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "155.0", formatAmount(155))
	assert.Equal(t, "6.5", formatAmount(6.5))
	assert.Equal(t, "0.25", formatAmount(0.25))
	assert.Equal(t, "0.0", formatAmount(0))
}

func TestRemoteControl_NoCommand(t *testing.T) {
	remote := &RemoteControl{}
	assert.Error(t, remote.PressButton())

	var called bool
	remote.SetCommand(CommandFunc(func() { called = true }))
	require.NoError(t, remote.PressButton())
	assert.True(t, called)
}

func TestStock_Unsubscribe(t *testing.T) {
	var buf bytes.Buffer
	stock := NewStock("Apple", 150)
	alice := NewStockTrader("Alice", &buf)
	bob := NewStockTrader("Bob", &buf)

	stock.Subscribe(alice)
	stock.Subscribe(bob)
	stock.Unsubscribe(alice)
	stock.SetPrice(151.25)

	assert.Equal(t, []string{"Trader Bob: The price of Apple has changed to 151.25."}, lines(buf.String()))
	assert.Equal(t, 151.25, stock.Price())
}

func TestNewAnimal(t *testing.T) {
	animal, err := NewAnimal("DoG")
	require.NoError(t, err)
	assert.Equal(t, "Dog says: Woof Woof!", animal.Speak())

	_, err = NewAnimal("cow")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
}

func TestConnectionProvider_ConcurrentInstance(t *testing.T) {
	var buf bytes.Buffer
	provider := NewConnectionProvider(&buf)

	const callers = 8
	conns := make([]*DatabaseConnection, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			conns[i] = provider.Instance()
		}(i)
	}
	wg.Wait()

	for _, c := range conns {
		assert.Same(t, conns[0], c)
	}
	assert.Equal(t, "Establishing Database Connection...\n", buf.String())
}

func TestAudioPlayer_CaseInsensitive(t *testing.T) {
	var buf bytes.Buffer
	player := NewAudioPlayer(&buf)

	player.Play("MP3", "a.mp3")
	player.Play("Vlc", "b.vlc")

	assert.Equal(t, []string{"Playing MP3 file. Name: a.mp3", "Playing VLC file. Name: b.vlc"}, lines(buf.String()))
	assert.Nil(t, NewMediaAdapter("avi", &buf))
}
