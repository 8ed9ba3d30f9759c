package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/reglet-dev/ketchlist/internal/application/dto"
	apperrors "github.com/reglet-dev/ketchlist/internal/application/errors"
	"github.com/reglet-dev/ketchlist/internal/domain"
	"github.com/reglet-dev/ketchlist/internal/domain/entities"
	"github.com/reglet-dev/ketchlist/internal/domain/leetspeak"
	"github.com/reglet-dev/ketchlist/internal/domain/values"
	"github.com/reglet-dev/ketchlist/internal/infrastructure/sink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedYear struct {
	year     int
	variants int
}

type recordingProgress struct {
	years  []recordedYear
	stages []dto.StageCount
}

func (p *recordingProgress) YearExpanded(year, variants int) {
	p.years = append(p.years, recordedYear{year, variants})
}

func (p *recordingProgress) StageCompleted(stage domain.Stage, written, filtered uint64) {
	p.stages = append(p.stages, dto.StageCount{Stage: stage, Written: written, Filtered: filtered})
}

func singleYearRecipe(companies ...string) entities.Recipe {
	return entities.Recipe{
		Companies:       companies,
		Years:           values.YearRange{Start: 2016, End: 2016},
		ExcludeSeasons:  true,
		ExcludeSpecials: true,
		Output:          "list.txt",
	}
}

func newUseCase(factory *sink.MemorySinkFactory, progress *recordingProgress) *GenerateWordlistUseCase {
	if progress == nil {
		return NewGenerateWordlistUseCase(nil, factory, nil, nil)
	}
	return NewGenerateWordlistUseCase(nil, factory, progress, nil)
}

func TestGenerate_BaseVariantsOnly(t *testing.T) {
	factory := sink.NewMemorySinkFactory()
	uc := newUseCase(factory, nil)

	resp, err := uc.Execute(context.Background(), dto.GenerateRequest{Recipe: singleYearRecipe("Test")})
	require.NoError(t, err)

	var want []string
	for v := range leetspeak.Variants("Test") {
		want = append(want, v+"2016", v, v+"16")
	}

	assert.Equal(t, want, factory.Sink.Lines())
	assert.True(t, factory.Sink.Closed())
	assert.Equal(t, uint64(len(want)), resp.Written)
	assert.Zero(t, resp.Filtered)
	assert.Equal(t, []dto.StageCount{{Stage: domain.StageBase, Written: uint64(len(want))}}, resp.Stages)
	assert.Equal(t, resp.Estimate.Total, resp.Written)
	assert.Equal(t, "list.txt", resp.OutputPath)
	assert.False(t, resp.RunID.IsZero())
	assert.False(t, resp.Filtering())
}

func TestGenerate_SpecialsAndRelationNumbers(t *testing.T) {
	factory := sink.NewMemorySinkFactory()
	progress := &recordingProgress{}
	uc := newUseCase(factory, progress)

	recipe := singleYearRecipe("t")
	recipe.ExcludeSpecials = false
	recipe.RelationNumbers = []int{7}

	resp, err := uc.Execute(context.Background(), dto.GenerateRequest{Recipe: recipe})
	require.NoError(t, err)

	lines := factory.Sink.Lines()
	specials := len(domain.SpecialChars)
	require.Len(t, lines, 6+6*2*specials+2*specials)

	assert.Equal(t, []string{"t2016", "t", "t16", "72016", "7", "716"}, lines[:6])
	assert.Equal(t, []string{"t2016!", "!t2016", "t2016\"", "\"t2016"}, lines[6:10])

	relStart := 6 + 6*2*specials
	assert.Equal(t, "716~", lines[relStart-2])
	assert.Equal(t, "~716", lines[relStart-1])
	assert.Equal(t, []string{"7!", "!7"}, lines[relStart:relStart+2])
	assert.Equal(t, "~7", lines[len(lines)-1])

	assert.Equal(t, uint64(len(lines)), resp.Written)
	assert.Equal(t, resp.Estimate.Total, resp.Written)
	assert.Equal(t, []dto.StageCount{
		{Stage: domain.StageBase, Written: 6},
		{Stage: domain.StageSpecials, Written: uint64(6 * 2 * specials)},
		{Stage: domain.StageRelationNumbers, Written: uint64(2 * specials)},
	}, resp.Stages)
	assert.Equal(t, resp.Stages, progress.stages)
}

func TestGenerate_DefaultRelationNumbers(t *testing.T) {
	factory := sink.NewMemorySinkFactory()
	uc := newUseCase(factory, nil)

	recipe := singleYearRecipe("t")
	recipe.ExcludeSpecials = false

	_, err := uc.Execute(context.Background(), dto.GenerateRequest{Recipe: recipe})
	require.NoError(t, err)

	lines := factory.Sink.Lines()
	tail := lines[len(lines)-4*len(domain.SpecialChars):]
	assert.Equal(t, []string{"123!", "!123"}, tail[:2])
	assert.Equal(t, []string{"1!", "!1"}, tail[2*len(domain.SpecialChars):2*len(domain.SpecialChars)+2])
}

func TestGenerate_YearsDescendWithProgress(t *testing.T) {
	factory := sink.NewMemorySinkFactory()
	progress := &recordingProgress{}
	uc := newUseCase(factory, progress)

	recipe := singleYearRecipe("t")
	recipe.Years = values.YearRange{Start: 2017, End: 2016}

	_, err := uc.Execute(context.Background(), dto.GenerateRequest{Recipe: recipe})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"t2017", "t", "t17", "72017", "7", "717",
		"t2016", "t", "t16", "72016", "7", "716",
	}, factory.Sink.Lines())
	assert.Equal(t, []recordedYear{{2017, 6}, {2016, 6}}, progress.years)
}

func TestGenerate_PolicyFilter(t *testing.T) {
	factory := sink.NewMemorySinkFactory()
	uc := newUseCase(factory, nil)

	recipe := singleYearRecipe("t")
	recipe.Policy = &values.PasswordPolicy{MinLength: 5, RequireDigit: true}

	resp, err := uc.Execute(context.Background(), dto.GenerateRequest{Recipe: recipe})
	require.NoError(t, err)

	assert.Equal(t, []string{"t2016", "72016"}, factory.Sink.Lines())
	assert.Equal(t, uint64(2), resp.Written)
	assert.Equal(t, uint64(4), resp.Filtered)
	assert.Equal(t, "len >= 5, digit", resp.Policy)
	assert.True(t, resp.Filtering())
}

func TestGenerate_PolicyAppliesToAffixes(t *testing.T) {
	factory := sink.NewMemorySinkFactory()
	uc := newUseCase(factory, nil)

	recipe := singleYearRecipe("t")
	recipe.ExcludeSpecials = false
	recipe.RelationNumbers = []int{}
	recipe.Policy = &values.PasswordPolicy{RequireSpecial: true, MaxLength: 2}

	resp, err := uc.Execute(context.Background(), dto.GenerateRequest{Recipe: recipe})
	require.NoError(t, err)

	lines := factory.Sink.Lines()
	specials := len(domain.SpecialChars)
	// Only the one-character spellings "t" and "7" are short enough.
	require.Len(t, lines, 2*2*specials)
	assert.Equal(t, []string{"t!", "!t"}, lines[:2])
	assert.Equal(t, resp.Estimate.Total-resp.Written, resp.Filtered)
}

func TestGenerate_FilterExpression(t *testing.T) {
	factory := sink.NewMemorySinkFactory()
	uc := newUseCase(factory, nil)

	recipe := singleYearRecipe("t")
	recipe.Filter = `!(candidate endsWith "16")`

	resp, err := uc.Execute(context.Background(), dto.GenerateRequest{Recipe: recipe})
	require.NoError(t, err)

	assert.Equal(t, []string{"t", "7"}, factory.Sink.Lines())
	assert.Equal(t, uint64(4), resp.Filtered)
}

func TestGenerate_InvalidRange(t *testing.T) {
	factory := sink.NewMemorySinkFactory()
	uc := newUseCase(factory, nil)

	recipe := singleYearRecipe("Acme")
	recipe.Years = values.YearRange{Start: 2010, End: 2020}

	resp, err := uc.Execute(context.Background(), dto.GenerateRequest{Recipe: recipe})
	require.Error(t, err)
	assert.Nil(t, resp)

	var cfgErr *apperrors.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "years", cfgErr.Aspect)
	assert.Equal(t,
		"configuration error (years): invalid year range: start year (2010) must be greater than or equal to end year (2020)",
		err.Error())

	var rangeErr *values.InvalidRangeError
	assert.True(t, errors.As(err, &rangeErr))
	assert.Empty(t, factory.Paths, "no sink should be opened")
}

func TestGenerate_InvalidRange_NoFileWritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "list.txt")
	uc := NewGenerateWordlistUseCase(nil, sink.NewFileSinkFactory(), nil, nil)

	recipe := singleYearRecipe("Acme")
	recipe.Years = values.YearRange{Start: 2010, End: 2020}
	recipe.Output = path

	_, err := uc.Execute(context.Background(), dto.GenerateRequest{Recipe: recipe})
	require.Error(t, err)
	assert.NoFileExists(t, path)
	assert.NoDirExists(t, filepath.Dir(path))
}

func TestGenerate_ValidationError(t *testing.T) {
	uc := newUseCase(sink.NewMemorySinkFactory(), nil)

	_, err := uc.Execute(context.Background(), dto.GenerateRequest{Recipe: singleYearRecipe()})

	var valErr *apperrors.ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Contains(t, valErr.Message, "at least one company is required")
}

func TestGenerate_BadFilterExpression(t *testing.T) {
	factory := sink.NewMemorySinkFactory()
	uc := newUseCase(factory, nil)

	recipe := singleYearRecipe("Acme")
	recipe.Filter = "length >="

	_, err := uc.Execute(context.Background(), dto.GenerateRequest{Recipe: recipe})

	var cfgErr *apperrors.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "filter", cfgErr.Aspect)
	assert.Empty(t, factory.Paths)
}

func TestGenerate_MaxLines(t *testing.T) {
	factory := sink.NewMemorySinkFactory()
	uc := newUseCase(factory, nil)

	recipe := singleYearRecipe("t")

	_, err := uc.Execute(context.Background(), dto.GenerateRequest{
		Recipe:  recipe,
		Options: dto.GenerateOptions{MaxLines: 5},
	})
	var cfgErr *apperrors.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "max_lines", cfgErr.Aspect)
	assert.Empty(t, factory.Paths)

	resp, err := uc.Execute(context.Background(), dto.GenerateRequest{
		Recipe:  recipe,
		Options: dto.GenerateOptions{MaxLines: 6},
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(6), resp.Written)
}

func TestGenerate_SinkCreateFails(t *testing.T) {
	factory := sink.NewMemorySinkFactory()
	factory.CreateErr = os.ErrPermission
	uc := newUseCase(factory, nil)

	_, err := uc.Execute(context.Background(), dto.GenerateRequest{Recipe: singleYearRecipe("Acme")})

	var outErr *apperrors.OutputError
	require.True(t, errors.As(err, &outErr))
	assert.Equal(t, "create", outErr.Op)
	assert.ErrorIs(t, err, os.ErrPermission)
}

func TestGenerate_WriteFailsMidStream(t *testing.T) {
	factory := sink.NewMemorySinkFactory()
	factory.Sink.FailAfter = 4
	factory.Sink.FailErr = errors.New("disk full")
	uc := newUseCase(factory, nil)

	resp, err := uc.Execute(context.Background(), dto.GenerateRequest{Recipe: singleYearRecipe("Acme")})
	require.Error(t, err)
	assert.Nil(t, resp)

	var outErr *apperrors.OutputError
	require.True(t, errors.As(err, &outErr))
	assert.Equal(t, "write", outErr.Op)
	assert.Equal(t, "list.txt", outErr.Path)

	assert.Len(t, factory.Sink.Lines(), 4, "partial output is kept")
	assert.True(t, factory.Sink.Closed(), "sink is released on failure")
}

func TestGenerate_Deterministic(t *testing.T) {
	dir := t.TempDir()
	uc := NewGenerateWordlistUseCase(nil, sink.NewFileSinkFactory(), nil, nil)

	run := func(name string) []byte {
		recipe := entities.Recipe{
			Companies:      []string{"Acme"},
			Years:          values.YearRange{Start: 2017, End: 2016},
			ExcludeSeasons: true,
			Output:         filepath.Join(dir, name),
		}
		resp, err := uc.Execute(context.Background(), dto.GenerateRequest{Recipe: recipe})
		require.NoError(t, err)

		data, err := os.ReadFile(recipe.Output)
		require.NoError(t, err)
		assert.Equal(t, int64(len(data)), resp.BytesWritten)
		return data
	}

	first := run("first.txt")
	second := run("second.txt")
	assert.Equal(t, first, second)
}

func TestEstimate(t *testing.T) {
	uc := newUseCase(sink.NewMemorySinkFactory(), nil)

	recipe := singleYearRecipe("t")
	recipe.ExcludeSpecials = false
	recipe.RelationNumbers = []int{7}

	resp, err := uc.Estimate(context.Background(), dto.EstimateRequest{Recipe: recipe})
	require.NoError(t, err)

	specials := uint64(len(domain.SpecialChars))
	assert.Equal(t, []string{"t"}, resp.Seeds)
	assert.Equal(t, uint64(2), resp.Estimate.Variants)
	assert.Equal(t, 6+6*2*specials+2*specials, resp.Estimate.Total)

	recipe.Years = values.YearRange{Start: 1, End: 2}
	_, err = uc.Estimate(context.Background(), dto.EstimateRequest{Recipe: recipe})
	var cfgErr *apperrors.ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
}
