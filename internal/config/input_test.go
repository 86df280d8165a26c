package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kobibe/tibco-developer-hub/internal/yamldoc"
	tibcoerrors "github.com/kobibe/tibco-developer-hub/pkg/errors"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestResolveAppliesDefaults(t *testing.T) {
	t.Parallel()

	structure := yamldoc.RecordOf("kind", "Component")

	cases := []struct {
		name  string
		input *CreateYAMLInput
		want  Effective
	}{
		{
			name:  "only output structure",
			input: &CreateYAMLInput{OutputStructure: structure},
			want:  Effective{OutputFile: DefaultOutputFile, OutputStructure: structure},
		},
		{
			name:  "empty source path equals absent",
			input: &CreateYAMLInput{SourcePath: strPtr(""), OutputStructure: structure},
			want:  Effective{OutputFile: DefaultOutputFile, OutputStructure: structure},
		},
		{
			name:  "empty output file falls back to default",
			input: &CreateYAMLInput{OutputFile: strPtr(""), OutputStructure: structure},
			want:  Effective{OutputFile: DefaultOutputFile, OutputStructure: structure},
		},
		{
			name: "explicit values win",
			input: &CreateYAMLInput{
				SourcePath:      strPtr("services/orders"),
				FailOnError:     boolPtr(true),
				OutputFile:      strPtr("entity.yaml"),
				OutputStructure: structure,
			},
			want: Effective{
				SourcePath:      "services/orders",
				FailOnError:     true,
				OutputFile:      "entity.yaml",
				OutputStructure: structure,
			},
		},
		{
			name:  "nil input",
			input: nil,
			want:  Effective{OutputFile: DefaultOutputFile},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, tc.input.Resolve())
		})
	}
}

func TestFromRecord(t *testing.T) {
	t.Parallel()

	t.Run("decodes all fields", func(t *testing.T) {
		t.Parallel()

		structure := yamldoc.RecordOf("kind", "Component")
		in, err := FromRecord(yamldoc.RecordOf(
			"sourcePath", "repo",
			"failOnError", true,
			"outputFile", "out.yaml",
			"outputStructure", structure,
			"ignored", "extra",
		))
		require.NoError(t, err)
		require.Equal(t, "repo", *in.SourcePath)
		require.True(t, *in.FailOnError)
		require.Equal(t, "out.yaml", *in.OutputFile)
		require.Same(t, structure, in.OutputStructure)
	})

	t.Run("keeps unserializable values for the action to report", func(t *testing.T) {
		t.Parallel()

		in, err := FromRecord(yamldoc.RecordOf("outputStructure", yamldoc.RecordOf("fn", func() {})))
		require.NoError(t, err)
		require.Equal(t, 1, in.OutputStructure.Len())
	})

	t.Run("accepts plain maps", func(t *testing.T) {
		t.Parallel()

		in, err := FromRecord(yamldoc.RecordOf("outputStructure", map[string]any{"b": 1, "a": 2}))
		require.NoError(t, err)
		require.Equal(t, []string{"a", "b"}, in.OutputStructure.Keys())
	})

	t.Run("rejects wrong types", func(t *testing.T) {
		t.Parallel()

		cases := map[string]*yamldoc.Record{
			"sourcePath":      yamldoc.RecordOf("sourcePath", 3, "outputStructure", yamldoc.NewRecord()),
			"failOnError":     yamldoc.RecordOf("failOnError", "yes", "outputStructure", yamldoc.NewRecord()),
			"outputFile":      yamldoc.RecordOf("outputFile", false, "outputStructure", yamldoc.NewRecord()),
			"outputStructure": yamldoc.RecordOf("outputStructure", []any{"a"}),
		}
		for field, params := range cases {
			_, err := FromRecord(params)
			var valErr *tibcoerrors.ValidationError
			require.ErrorAs(t, err, &valErr, field)
			require.Equal(t, field, valErr.Field)
		}
	})

	t.Run("requires output structure", func(t *testing.T) {
		t.Parallel()

		_, err := FromRecord(yamldoc.RecordOf("sourcePath", "x"))
		var valErr *tibcoerrors.ValidationError
		require.ErrorAs(t, err, &valErr)
		require.Equal(t, "outputStructure", valErr.Field)
		require.Contains(t, err.Error(), "is required")
	})

	t.Run("rejects nil params", func(t *testing.T) {
		t.Parallel()

		_, err := FromRecord(nil)
		require.Error(t, err)
	})
}

func TestValidateInputRejectsNulBytes(t *testing.T) {
	t.Parallel()

	err := ValidateInput(&CreateYAMLInput{
		SourcePath:      strPtr("repo\x00"),
		OutputStructure: yamldoc.NewRecord(),
	})
	var valErr *tibcoerrors.ValidationError
	require.ErrorAs(t, err, &valErr)
	require.Equal(t, "sourcePath", valErr.Field)
	require.Contains(t, err.Error(), "nonul")
}
