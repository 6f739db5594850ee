package aggregates

import (
	"context"
	"fmt"

	"github.com/yungbote/foodmap-backend/internal/data/repos"
	types "github.com/yungbote/foodmap-backend/internal/domain"
	domainagg "github.com/yungbote/foodmap-backend/internal/domain/aggregates"
	"github.com/yungbote/foodmap-backend/internal/domain/directory"
	"github.com/yungbote/foodmap-backend/internal/platform/dbctx"
)

type FoodResourceAggregateDeps struct {
	Base BaseDeps

	FoodResources repos.FoodResourceRepo
	Tags          repos.TagRepo
	Days          repos.DayRepo
	ResourceTags  repos.ResourceTagRepo
	BusinessHours repos.BusinessHoursRepo
}

type foodResourceAggregate struct {
	deps FoodResourceAggregateDeps
}

func NewFoodResourceAggregate(deps FoodResourceAggregateDeps) domainagg.FoodResourceAggregate {
	deps.Base = deps.Base.withDefaults()
	return &foodResourceAggregate{deps: deps}
}

func (a *foodResourceAggregate) Contract() domainagg.Contract {
	return domainagg.FoodResourceAggregateContract
}

func (a *foodResourceAggregate) configured(op string) error {
	d := a.deps
	if d.FoodResources == nil || d.Tags == nil || d.Days == nil || d.ResourceTags == nil || d.BusinessHours == nil {
		return domainagg.NewError(domainagg.CodePersistence, op, "food resource aggregate repos not configured", nil)
	}
	return nil
}

func (a *foodResourceAggregate) ListAll(ctx context.Context) ([]directory.FoodResourceView, error) {
	const op = "Directory.FoodResource.ListAll"
	if err := a.configured(op); err != nil {
		return nil, err
	}
	out := []directory.FoodResourceView{}
	err := executeRead(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		rows, err := a.deps.FoodResources.ListAll(dbc)
		if err != nil {
			return err
		}
		aggs, err := a.assemble(dbc, rows)
		if err != nil {
			return err
		}
		out = directory.ToViews(aggs)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (a *foodResourceAggregate) GetByID(ctx context.Context, id uint) (directory.FoodResourceView, error) {
	const op = "Directory.FoodResource.GetByID"
	var out directory.FoodResourceView
	if err := a.configured(op); err != nil {
		return out, err
	}
	err := executeRead(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		v, err := a.load(dbc, id)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	return out, err
}

func (a *foodResourceAggregate) Insert(ctx context.Context, in directory.FoodResourceInput) (directory.FoodResourceView, error) {
	const op = "Directory.FoodResource.Insert"
	var out directory.FoodResourceView
	if err := a.configured(op); err != nil {
		return out, err
	}
	norm, err := in.Normalize()
	if err != nil {
		return out, MapError(op, err)
	}

	err = executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		row := &types.FoodResource{}
		norm.Apply(row)
		if _, err := a.deps.FoodResources.Create(dbc, []*types.FoodResource{row}); err != nil {
			return err
		}
		if row.ID == 0 {
			return fmt.Errorf("store did not assign a food resource id")
		}
		if err := a.linkTags(dbc, row.ID, norm.TagNames()); err != nil {
			return err
		}
		week, err := a.buildWeek(dbc, row.ID, norm)
		if err != nil {
			return err
		}
		if _, err := a.deps.BusinessHours.Create(dbc, week); err != nil {
			return err
		}
		v, err := a.load(dbc, row.ID)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	return out, err
}

func (a *foodResourceAggregate) Update(ctx context.Context, id uint, in directory.FoodResourceInput) (directory.FoodResourceView, error) {
	const op = "Directory.FoodResource.Update"
	var out directory.FoodResourceView
	if err := a.configured(op); err != nil {
		return out, err
	}
	norm, err := in.Normalize()
	if err != nil {
		return out, MapError(op, err)
	}

	err = executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		row := &types.FoodResource{ID: id}
		norm.Apply(row)
		n, err := a.deps.FoodResources.UpdateScalars(dbc, row)
		if err != nil {
			return err
		}
		if err := requireAffected(n, "food resource", id); err != nil {
			return err
		}
		if _, err := a.deps.ResourceTags.DeleteByFoodResourceIDs(dbc, []uint{id}); err != nil {
			return err
		}
		if err := a.linkTags(dbc, id, norm.TagNames()); err != nil {
			return err
		}
		week, err := a.buildWeek(dbc, id, norm)
		if err != nil {
			return err
		}
		if err := a.deps.BusinessHours.Upsert(dbc, week); err != nil {
			return err
		}
		v, err := a.load(dbc, id)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	return out, err
}

func (a *foodResourceAggregate) Delete(ctx context.Context, id uint) error {
	const op = "Directory.FoodResource.Delete"
	if err := a.configured(op); err != nil {
		return err
	}
	return executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		ids := []uint{id}
		// owned rows first so engines without enforced foreign keys end up in the same state
		if _, err := a.deps.ResourceTags.DeleteByFoodResourceIDs(dbc, ids); err != nil {
			return err
		}
		if _, err := a.deps.BusinessHours.DeleteByFoodResourceIDs(dbc, ids); err != nil {
			return err
		}
		n, err := a.deps.FoodResources.DeleteByIDs(dbc, ids)
		if err != nil {
			return err
		}
		return requireAffected(n, "food resource", id)
	})
}

// linkTags resolves names to tag rows, creating missing ones, and links them to the resource.
func (a *foodResourceAggregate) linkTags(dbc dbctx.Context, foodResourceID uint, names []string) error {
	if len(names) == 0 {
		return nil
	}
	tags, err := a.resolveTags(dbc, names)
	if err != nil {
		return err
	}
	links := make([]*types.ResourceTag, 0, len(tags))
	for _, t := range tags {
		links = append(links, &types.ResourceTag{FoodResourceID: foodResourceID, TagID: t.ID})
	}
	_, err = a.deps.ResourceTags.CreateIgnoreDuplicates(dbc, links)
	return err
}

// resolveTags returns one tag per name in input order. A concurrent insert of the same
// name is absorbed by the unique index; the row is then read back and reused.
func (a *foodResourceAggregate) resolveTags(dbc dbctx.Context, names []string) ([]*types.Tag, error) {
	byName, err := a.tagsByName(dbc, names)
	if err != nil {
		return nil, err
	}
	var missing []string
	for _, n := range names {
		if byName[n] == nil {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		if _, err := a.deps.Tags.CreateIgnoreDuplicates(dbc, missing); err != nil {
			return nil, err
		}
		created, err := a.tagsByName(dbc, missing)
		if err != nil {
			return nil, err
		}
		for n, t := range created {
			byName[n] = t
		}
	}

	out := make([]*types.Tag, 0, len(names))
	for _, n := range names {
		t := byName[n]
		if t == nil || t.ID == 0 {
			return nil, ConflictError(fmt.Sprintf("tag %q could not be created or found", n))
		}
		out = append(out, t)
	}
	return out, nil
}

func (a *foodResourceAggregate) tagsByName(dbc dbctx.Context, names []string) (map[string]*types.Tag, error) {
	rows, err := a.deps.Tags.GetByNames(dbc, names)
	if err != nil {
		return nil, err
	}
	out := make(map[string]*types.Tag, len(rows))
	for _, t := range rows {
		out[t.Name] = t
	}
	return out, nil
}

// buildWeek produces exactly one row per stored day. Days the input does not mention get nil times.
func (a *foodResourceAggregate) buildWeek(dbc dbctx.Context, foodResourceID uint, in directory.FoodResourceInput) ([]*types.BusinessHours, error) {
	days, err := a.deps.Days.ListAll(dbc)
	if err != nil {
		return nil, err
	}
	if len(days) != len(directory.Weekdays) {
		return nil, domainagg.NewError(
			domainagg.CodePreconditionFailed,
			"Directory.FoodResource.buildWeek",
			fmt.Sprintf("day table has %d rows, want %d", len(days), len(directory.Weekdays)),
			nil,
		)
	}
	week := make([]*types.BusinessHours, 0, len(days))
	for _, d := range days {
		open, closing := in.HoursFor(d.Name)
		week = append(week, &types.BusinessHours{
			FoodResourceID: foodResourceID,
			DayID:          d.ID,
			OpenTime:       open,
			CloseTime:      closing,
		})
	}
	return week, nil
}

func (a *foodResourceAggregate) load(dbc dbctx.Context, id uint) (directory.FoodResourceView, error) {
	row, err := a.deps.FoodResources.GetByID(dbc, id)
	if err != nil {
		return directory.FoodResourceView{}, err
	}
	if row == nil {
		return directory.FoodResourceView{}, NotFoundError(fmt.Sprintf("food resource %d not found", id))
	}
	aggs, err := a.assemble(dbc, []*types.FoodResource{row})
	if err != nil {
		return directory.FoodResourceView{}, err
	}
	return directory.ToView(aggs[0]), nil
}

// assemble loads tags and hours for all rows with one joined query each.
func (a *foodResourceAggregate) assemble(dbc dbctx.Context, rows []*types.FoodResource) ([]directory.Aggregate, error) {
	if len(rows) == 0 {
		return []directory.Aggregate{}, nil
	}
	ids := make([]uint, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	tagRows, err := a.deps.ResourceTags.ListDetailsByFoodResourceIDs(dbc, ids)
	if err != nil {
		return nil, err
	}
	hourRows, err := a.deps.BusinessHours.ListDetailsByFoodResourceIDs(dbc, ids)
	if err != nil {
		return nil, err
	}

	tagsBy := map[uint][]directory.Tag{}
	for _, t := range tagRows {
		tagsBy[t.FoodResourceID] = append(tagsBy[t.FoodResourceID], directory.Tag{ID: t.TagID, Name: t.TagName})
	}
	hoursBy := map[uint][]directory.BusinessHoursDetail{}
	for _, h := range hourRows {
		hoursBy[h.FoodResourceID] = append(hoursBy[h.FoodResourceID], h)
	}

	out := make([]directory.Aggregate, 0, len(rows))
	for _, r := range rows {
		out = append(out, directory.Aggregate{
			Resource: *r,
			Tags:     tagsBy[r.ID],
			Hours:    hoursBy[r.ID],
		})
	}
	return out, nil
}
