// Package services contains application use cases.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/reglet-dev/ketchlist/internal/application/dto"
	apperrors "github.com/reglet-dev/ketchlist/internal/application/errors"
	"github.com/reglet-dev/ketchlist/internal/application/ports"
	"github.com/reglet-dev/ketchlist/internal/domain"
	"github.com/reglet-dev/ketchlist/internal/domain/entities"
	"github.com/reglet-dev/ketchlist/internal/domain/services"
	"github.com/reglet-dev/ketchlist/internal/domain/values"
)

// GenerateWordlistUseCase orchestrates a complete generation run:
// seed words, yeared leetspeak variants, special character affixes,
// filtering, and writing to a sink.
type GenerateWordlistUseCase struct {
	expander *services.Expander
	sinks    ports.SinkFactory
	progress ports.ProgressReporter
	logger   *slog.Logger
}

// NewGenerateWordlistUseCase creates a new generate wordlist use case.
// A nil progress reporter discards progress.
func NewGenerateWordlistUseCase(
	expander *services.Expander,
	sinks ports.SinkFactory,
	progress ports.ProgressReporter,
	logger *slog.Logger,
) *GenerateWordlistUseCase {
	if expander == nil {
		expander = services.NewExpander(nil)
	}
	if progress == nil {
		progress = discardProgress{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &GenerateWordlistUseCase{
		expander: expander,
		sinks:    sinks,
		progress: progress,
		logger:   logger,
	}
}

// Execute runs the generation pipeline. Every configuration problem is
// reported before the sink is created. Once writing starts, the first
// sink failure aborts the run; lines already written stay on disk.
func (uc *GenerateWordlistUseCase) Execute(ctx context.Context, req dto.GenerateRequest) (resp *dto.GenerateResponse, err error) {
	startTime := time.Now()

	recipe := req.Recipe
	recipe.ApplyDefaults()
	if err := validateRecipe(&recipe); err != nil {
		return nil, err
	}

	accept, err := buildAcceptor(&recipe)
	if err != nil {
		return nil, err
	}

	seeds := recipe.SeedWords()
	estimate := uc.estimate(&recipe, seeds)
	if req.Options.MaxLines > 0 && estimate.Total > req.Options.MaxLines {
		return nil, apperrors.NewConfigurationError("max_lines",
			fmt.Sprintf("run would write %d lines, limit is %d", estimate.Total, req.Options.MaxLines), nil)
	}

	uc.logger.InfoContext(ctx, "generating wordlist",
		"companies", recipe.Companies,
		"output", recipe.Output,
		"years", recipe.Years.String())
	uc.logger.DebugContext(ctx, "generation settings",
		"seeds", seeds,
		"relation_numbers", recipe.RelationNumbers,
		"include_months", recipe.IncludeMonths,
		"include_seasons", !recipe.ExcludeSeasons,
		"include_specials", recipe.IncludeSpecials(),
		"years_total", recipe.Years.Len(),
		"estimated_lines", estimate.Total)

	sink, err := uc.sinks.Create(recipe.Output)
	if err != nil {
		return nil, apperrors.NewOutputError(recipe.Output, "create", err)
	}
	defer func() {
		if closeErr := sink.Close(); closeErr != nil && err == nil {
			resp = nil
			err = apperrors.NewOutputError(recipe.Output, "close", closeErr)
		}
	}()

	variants, err := uc.bufferVariants(seeds, recipe.Years, estimate.Base)
	if err != nil {
		return nil, apperrors.NewConfigurationError("years", "invalid year range", err)
	}
	uc.logger.DebugContext(ctx, "base variations buffered", "total", len(variants))

	w := &lineWriter{sink: sink, path: recipe.Output}
	var stages []dto.StageCount

	for _, v := range variants {
		if err := w.emit(v, accept == nil || accept(v)); err != nil {
			return nil, err
		}
	}
	stages = append(stages, uc.completeStage(w, domain.StageBase))

	if recipe.IncludeSpecials() {
		for _, v := range variants {
			if err := w.emitAll(services.Augment(v, domain.SpecialChars, accept)); err != nil {
				return nil, err
			}
		}
		stages = append(stages, uc.completeStage(w, domain.StageSpecials))

		for _, base := range services.RelationNumberBases(recipe.RelationNumbers) {
			if err := w.emitAll(services.Augment(base, domain.SpecialChars, accept)); err != nil {
				return nil, err
			}
		}
		stages = append(stages, uc.completeStage(w, domain.StageRelationNumbers))
	}

	resp = &dto.GenerateResponse{
		RunID:        values.NewRunID(),
		OutputPath:   recipe.Output,
		Years:        recipe.Years,
		Seeds:        seeds,
		Filter:       recipe.Filter,
		Stages:       stages,
		Written:      w.written,
		Filtered:     w.filtered,
		BytesWritten: sink.BytesWritten(),
		Estimate:     estimate,
		Metadata: dto.ResponseMetadata{
			RequestID:   req.Metadata.RequestID,
			ProcessedAt: startTime,
			Duration:    time.Since(startTime),
		},
	}
	if recipe.Policy != nil {
		resp.Policy = recipe.Policy.String()
	}

	uc.logger.InfoContext(ctx, "wordlist generated",
		"output", recipe.Output,
		"written", resp.Written,
		"filtered", resp.Filtered)

	return resp, nil
}

// Estimate reports how many lines a recipe would produce before filtering.
func (uc *GenerateWordlistUseCase) Estimate(_ context.Context, req dto.EstimateRequest) (*dto.EstimateResponse, error) {
	recipe := req.Recipe
	recipe.ApplyDefaults()
	if err := validateRecipe(&recipe); err != nil {
		return nil, err
	}

	seeds := recipe.SeedWords()
	return &dto.EstimateResponse{
		Seeds:           seeds,
		Years:           recipe.Years,
		RelationNumbers: recipe.RelationNumbers,
		IncludeSpecials: recipe.IncludeSpecials(),
		Estimate:        uc.estimate(&recipe, seeds),
	}, nil
}

func (uc *GenerateWordlistUseCase) estimate(recipe *entities.Recipe, seeds []string) services.Estimate {
	return uc.expander.Estimate(services.EstimateInput{
		Seeds:           seeds,
		Years:           recipe.Years.Len(),
		RelationNumbers: len(recipe.RelationNumbers),
		SpecialChars:    len(domain.SpecialChars),
		IncludeSpecials: recipe.IncludeSpecials(),
	})
}

// bufferVariants materializes every yeared variant so the affix stage
// can walk them again in the same order.
func (uc *GenerateWordlistUseCase) bufferVariants(seeds []string, years values.YearRange, sizeHint uint64) ([]string, error) {
	const maxPrealloc = 1 << 20
	variants := make([]string, 0, min(sizeHint, maxPrealloc))

	lines, err := uc.expander.YearedVariantsFunc(seeds, years, uc.progress.YearExpanded)
	if err != nil {
		return nil, err
	}
	for v := range lines {
		variants = append(variants, v)
	}
	return variants, nil
}

func (uc *GenerateWordlistUseCase) completeStage(w *lineWriter, stage domain.Stage) dto.StageCount {
	count := w.checkpoint(stage)
	uc.progress.StageCompleted(stage, count.Written, count.Filtered)
	return count
}

// validateRecipe maps recipe invariant violations onto application errors.
func validateRecipe(recipe *entities.Recipe) error {
	err := recipe.Validate()
	if err == nil {
		return nil
	}

	var rangeErr *values.InvalidRangeError
	if errors.As(err, &rangeErr) {
		return apperrors.NewConfigurationError("years", "invalid year range", rangeErr)
	}
	return apperrors.NewValidationError("recipe", err.Error())
}

// buildAcceptor combines the policy and filter expression. It returns nil
// when nothing filters, which lets every candidate through.
func buildAcceptor(recipe *entities.Recipe) (func(string) bool, error) {
	specs := []services.CandidateSpecification{}
	if recipe.Policy != nil {
		specs = append(specs, services.NewPolicySpecification(recipe.Policy))
	}
	if recipe.Filter != "" {
		program, err := services.CompileFilter(recipe.Filter)
		if err != nil {
			return nil, apperrors.NewConfigurationError("filter", "cannot compile filter expression", err)
		}
		specs = append(specs, services.NewExpressionSpecification(program))
	}

	spec := services.NewAndSpecification(specs...)
	if spec.Empty() {
		return nil, nil
	}
	return spec.IsSatisfiedBy, nil
}

// discardProgress is used when no reporter is supplied.
type discardProgress struct{}

func (discardProgress) YearExpanded(int, int) {}
func (discardProgress) StageCompleted(domain.Stage, uint64, uint64) {}
