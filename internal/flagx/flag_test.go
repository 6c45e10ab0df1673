package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "conf.json", "-a", "localhost"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "long flag with equals",
			args:         []string{"--config=alt.json", "-a", "localhost"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=alt.json"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "dash-leading value needs equals form",
			args:         []string{"-s", "-mysecret", "-d=-dsn"},
			allowedFlags: []string{"-s", "-d"},
			want:         []string{"-s", "-d=-dsn"},
		},
		{
			name:         "flag without value at end",
			args:         []string{"-c"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "next dash-prefixed token is not a value",
			args:         []string{"-s", "-t", "5"},
			allowedFlags: []string{"-s", "-t"},
			want:         []string{"-s", "-t", "5"},
		},
		{
			name:         "multiple allowed flags keep order",
			args:         []string{"-a", ":50051", "-d", "postgres://x", "--other", "x"},
			allowedFlags: []string{"-d", "-a"},
			want:         []string{"-a", ":50051", "-d", "postgres://x"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigFile(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "none", args: []string{"bin", "-a", ":1"}, want: ""},
		{name: "short", args: []string{"bin", "-c", "a.json"}, want: "a.json"},
		{name: "long", args: []string{"bin", "-config", "b.json", "-s", "x"}, want: "b.json"},
		{name: "equals", args: []string{"bin", "-config=c.json"}, want: "c.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			assert.Equal(t, tt.want, ConfigFile())
		})
	}
}
