// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package artifacts

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecoderSingleDefinition(t *testing.T) {
	input := `name: WindowsEventLogs
aliases: [WinEvtLogs]
doc: Windows Event logs.
sources:
- type: FILE
  attributes:
    paths: ['%%environ_systemroot%%\System32\winevt\Logs\*.evtx']
  supported_os: [Windows]
supported_os: [Windows]
urls: ['https://github.com/ForensicArtifacts/artifacts-kb/blob/main/windows/EventLogs.md']
`

	dec := NewDecoder(strings.NewReader(input))
	def, err := dec.Next()
	require.NoError(t, err)

	want := &Definition{
		Name:    "WindowsEventLogs",
		Aliases: []string{"WinEvtLogs"},
		Doc:     "Windows Event logs.",
		Sources: []Source{
			{
				Type: "FILE",
				Attributes: map[string]any{
					"paths": []any{`%%environ_systemroot%%\System32\winevt\Logs\*.evtx`},
				},
				SupportedOS: []string{"Windows"},
			},
		},
		SupportedOS: []string{"Windows"},
		URLs:        []string{"https://github.com/ForensicArtifacts/artifacts-kb/blob/main/windows/EventLogs.md"},
	}
	if diff := cmp.Diff(want, def); diff != "" {
		t.Errorf("definition mismatch (-want +got):\n%s", diff)
	}

	_, err = dec.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestDecoderStreamOrder(t *testing.T) {
	input := `name: WindowsAppCompatCache
doc: Windows Application Compatibility Cache.
---
name: WindowsPrefetchFiles
doc: Windows Prefetch files.
urls: ['https://en.wikipedia.org/wiki/Prefetcher']
---
name: WindowsRecycleBin
doc: Windows Recycle Bin files.
`

	dec := NewDecoder(strings.NewReader(input))

	var names []string
	for {
		def, err := dec.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		names = append(names, def.Name)
	}

	want := []string{"WindowsAppCompatCache", "WindowsPrefetchFiles", "WindowsRecycleBin"}
	assert.Equal(t, want, names)
}

func TestDecoderEmptyStream(t *testing.T) {
	dec := NewDecoder(strings.NewReader(""))
	def, err := dec.Next()
	assert.Nil(t, def)
	assert.ErrorIs(t, err, io.EOF)
}

func TestDecoderGrammarViolations(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		errMsg string
	}{
		{
			name:   "missing name",
			input:  "doc: An artifact without a name.\n",
			errMsg: "missing a name",
		},
		{
			name: "duplicate name",
			input: "name: WindowsHostsFiles\ndoc: First.\n---\n" +
				"name: WindowsHostsFiles\ndoc: Second.\n",
			errMsg: "duplicate definition: WindowsHostsFiles",
		},
		{
			name:   "unknown field",
			input:  "name: WindowsFirewallLog\ndoc: Firewall log.\nconditions: [os == 'Windows']\n",
			errMsg: "conditions",
		},
		{
			name:   "malformed yaml",
			input:  "name: WindowsCrashDumps\ndoc: [unterminated\n",
			errMsg: "yaml",
		},
		{
			name:   "non-mapping document",
			input:  "- WindowsRunKeys\n- WindowsServices\n",
			errMsg: "cannot unmarshal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := NewDecoder(strings.NewReader(tt.input))

			var err error
			for err == nil {
				_, err = dec.Next()
			}

			require.NotErrorIs(t, err, io.EOF)
			assert.True(t, IsFormatError(err), "want FormatError, got %T: %v", err, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestDecoderDeliversDefinitionsBeforeFailure(t *testing.T) {
	input := `name: WindowsSetupAPILogs
doc: Windows SetupAPI logs.
---
doc: This definition has no name and poisons the stream.
---
name: WindowsSystemRegistryFiles
doc: Never reached.
`

	dec := NewDecoder(strings.NewReader(input))

	def, err := dec.Next()
	require.NoError(t, err)
	assert.Equal(t, "WindowsSetupAPILogs", def.Name)

	_, err = dec.Next()
	require.Error(t, err)
	assert.True(t, IsFormatError(err))

	// The failure is sticky: the stream never resumes past a bad document.
	_, again := dec.Next()
	assert.Equal(t, err, again)
}

func TestIsFormatError(t *testing.T) {
	formatErr := &FormatError{Err: errors.New("definition is missing a name")}

	assert.True(t, IsFormatError(formatErr))
	assert.True(t, IsFormatError(fmt.Errorf("processing file: %w", formatErr)))
	assert.False(t, IsFormatError(errors.New("permission denied")))
	assert.False(t, IsFormatError(nil))
}

func TestFormatErrorMessage(t *testing.T) {
	err := &FormatError{Err: errors.New("duplicate definition: WindowsUserShellFolders")}
	assert.Equal(t, "invalid artifact definition: duplicate definition: WindowsUserShellFolders", err.Error())
	assert.Equal(t, "duplicate definition: WindowsUserShellFolders", err.Unwrap().Error())
}
