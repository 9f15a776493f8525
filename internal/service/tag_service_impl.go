package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/slotlog/internal/db"
	"github.com/alexanderramin/slotlog/internal/domain"
	"github.com/alexanderramin/slotlog/internal/repository"
)

type tagService struct {
	tags     repository.TagRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewTagService(tags repository.TagRepo, uow db.UnitOfWork, observers ...UseCaseObserver) TagService {
	return &tagService{tags: tags, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *tagService) List(ctx context.Context) ([]domain.Tag, error) {
	return s.tags.List(ctx)
}

func (s *tagService) GetByID(ctx context.Context, id string) (*domain.Tag, error) {
	return s.tags.GetByID(ctx, id)
}

func (s *tagService) Add(ctx context.Context, name, color string) (tag *domain.Tag, err error) {
	fields := map[string]any{"name": name}
	defer track(ctx, s.observer, "add-tag", fields)(&err)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: tag name is empty", ErrInvalidInput)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		tags := repository.NewSQLiteTagRepo(tx)
		existing, err := tags.List(ctx)
		if err != nil {
			return err
		}

		if color == "" {
			color = domain.TagPalette[len(existing)%len(domain.TagPalette)]
		}
		color, err = validateColor(color)
		if err != nil {
			return err
		}

		t := domain.Tag{ID: uniqueTagID(slugify(name), existing), Name: name, Color: color}
		if err := tags.Create(ctx, t); err != nil {
			return err
		}
		tag = &t
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["id"] = tag.ID
	return tag, nil
}

func uniqueTagID(base string, existing []domain.Tag) string {
	taken := make(map[string]bool, len(existing))
	for _, t := range existing {
		taken[t.ID] = true
	}
	id := base
	for n := 2; taken[id]; n++ {
		id = fmt.Sprintf("%s-%d", base, n)
	}
	return id
}

func (s *tagService) Update(ctx context.Context, id string, patch TagPatch) (tag *domain.Tag, err error) {
	defer track(ctx, s.observer, "update-tag", map[string]any{"id": id})(&err)

	tag, err = s.tags.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: tag name is empty", ErrInvalidInput)
		}
		tag.Name = name
	}
	if patch.Color != nil {
		if tag.Color, err = validateColor(*patch.Color); err != nil {
			return nil, err
		}
	}
	if err = s.tags.Update(ctx, *tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *tagService) Delete(ctx context.Context, id string) (res *TagDeleteResult, err error) {
	fields := map[string]any{"id": id}
	defer track(ctx, s.observer, "delete-tag", fields)(&err)

	res = &TagDeleteResult{}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteTagRepo(tx).Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%w: %s", ErrUnknownTag, id)
			}
			return err
		}
		n, err := repository.NewSQLiteScheduleRepo(tx).DeleteByTag(ctx, id)
		if err != nil {
			return err
		}
		res.SchedulesRemoved = n
		n, err = repository.NewSQLiteEntryRepo(tx).DeleteAssignedTag(ctx, id)
		if err != nil {
			return err
		}
		res.EntriesRemoved = n
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["schedules_removed"] = res.SchedulesRemoved
	fields["entries_removed"] = res.EntriesRemoved
	return res, nil
}
