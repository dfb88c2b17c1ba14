package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"

	"lifeplanner/internal/event/repository"
	"lifeplanner/internal/model"
)

const eventColumns = `id, title, description, date, start_time, end_time, category,
	amount, currency, source_type, is_renewal, expiry_date, recurrence,
	group_id, series_index, series_total, is_conflict, is_past, ai_suggestion`

// Insert prepends the batch by assigning positions below the current
// minimum, preserving the batch's internal order.
func (r *implRepository) Insert(ctx context.Context, events []model.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "event/repository/sqlite.Insert begin: %v", err)
		return repository.ErrFailedToInsert
	}
	defer tx.Rollback()

	var minPos int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MIN(position), 0) FROM events`).Scan(&minPos); err != nil {
		r.l.Errorf(ctx, "event/repository/sqlite.Insert min position: %v", err)
		return repository.ErrFailedToInsert
	}

	base := minPos - int64(len(events))
	for i, ev := range events {
		recurrence, err := marshalRecurrence(ev.Recurrence)
		if err != nil {
			r.l.Errorf(ctx, "event/repository/sqlite.Insert recurrence: %v", err)
			return repository.ErrFailedToInsert
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO events (`+eventColumns+`, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			ev.ID, ev.Title, ev.Description, ev.Date, ev.StartTime, ev.EndTime,
			string(ev.Category), ev.Amount, ev.Currency, string(ev.SourceType),
			boolToInt(ev.IsRenewal), ev.ExpiryDate, recurrence,
			ev.GroupID, ev.SeriesIndex, ev.SeriesTotal,
			boolToInt(ev.IsConflict), boolToInt(ev.IsPast), ev.AISuggestion,
			base+int64(i),
		)
		if err != nil {
			r.l.Errorf(ctx, "event/repository/sqlite.Insert exec: %v", err)
			return repository.ErrFailedToInsert
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "event/repository/sqlite.Insert commit: %v", err)
		return repository.ErrFailedToInsert
	}
	return nil
}

// Update reads, merges, and writes back inside one transaction so merge
// semantics stay identical to the in-memory backend.
func (r *implRepository) Update(ctx context.Context, id string, opt repository.UpdateEventOptions) (model.Event, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "event/repository/sqlite.Update begin: %v", err)
		return model.Event{}, repository.ErrFailedToUpdate
	}
	defer tx.Rollback()

	ev, err := scanEvent(tx.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return model.Event{}, nil // not found -> zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "event/repository/sqlite.Update get: %v", err)
		return model.Event{}, repository.ErrFailedToUpdate
	}

	repository.Apply(&ev, opt)

	recurrence, err := marshalRecurrence(ev.Recurrence)
	if err != nil {
		r.l.Errorf(ctx, "event/repository/sqlite.Update recurrence: %v", err)
		return model.Event{}, repository.ErrFailedToUpdate
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE events SET title = ?, description = ?, date = ?, start_time = ?,
			end_time = ?, category = ?, amount = ?, currency = ?, source_type = ?,
			is_renewal = ?, expiry_date = ?, recurrence = ?, group_id = ?,
			series_index = ?, series_total = ?, is_conflict = ?, is_past = ?,
			ai_suggestion = ?
		WHERE id = ?`,
		ev.Title, ev.Description, ev.Date, ev.StartTime, ev.EndTime,
		string(ev.Category), ev.Amount, ev.Currency, string(ev.SourceType),
		boolToInt(ev.IsRenewal), ev.ExpiryDate, recurrence, ev.GroupID,
		ev.SeriesIndex, ev.SeriesTotal, boolToInt(ev.IsConflict),
		boolToInt(ev.IsPast), ev.AISuggestion, id,
	)
	if err != nil {
		r.l.Errorf(ctx, "event/repository/sqlite.Update exec: %v", err)
		return model.Event{}, repository.ErrFailedToUpdate
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "event/repository/sqlite.Update commit: %v", err)
		return model.Event{}, repository.ErrFailedToUpdate
	}
	return ev, nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id); err != nil {
		r.l.Errorf(ctx, "event/repository/sqlite.Delete: %v", err)
		return repository.ErrFailedToDelete
	}
	return nil
}

func (r *implRepository) Get(ctx context.Context, id string) (model.Event, error) {
	ev, err := scanEvent(r.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return model.Event{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "event/repository/sqlite.Get: %v", err)
		return model.Event{}, repository.ErrFailedToGet
	}
	return ev, nil
}

func (r *implRepository) List(ctx context.Context) ([]model.Event, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+eventColumns+` FROM events ORDER BY position ASC`)
	if err != nil {
		r.l.Errorf(ctx, "event/repository/sqlite.List: %v", err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	events := make([]model.Event, 0)
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			r.l.Errorf(ctx, "event/repository/sqlite.List scan: %v", err)
			return nil, repository.ErrFailedToList
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "event/repository/sqlite.List rows: %v", err)
		return nil, repository.ErrFailedToList
	}
	return events, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (model.Event, error) {
	var (
		ev                             model.Event
		category, sourceType           string
		isRenewal, isConflict, isPast  int
		recurrence                     sql.NullString
	)

	err := row.Scan(
		&ev.ID, &ev.Title, &ev.Description, &ev.Date, &ev.StartTime, &ev.EndTime,
		&category, &ev.Amount, &ev.Currency, &sourceType, &isRenewal,
		&ev.ExpiryDate, &recurrence, &ev.GroupID, &ev.SeriesIndex,
		&ev.SeriesTotal, &isConflict, &isPast, &ev.AISuggestion,
	)
	if err != nil {
		return model.Event{}, err
	}

	ev.Category = model.Category(category)
	ev.SourceType = model.SourceType(sourceType)
	ev.IsRenewal = isRenewal != 0
	ev.IsConflict = isConflict != 0
	ev.IsPast = isPast != 0

	if recurrence.Valid && recurrence.String != "" {
		var rule model.RecurrenceRule
		if err := json.Unmarshal([]byte(recurrence.String), &rule); err != nil {
			return model.Event{}, err
		}
		ev.Recurrence = &rule
	}

	return ev, nil
}

func marshalRecurrence(rule *model.RecurrenceRule) (sql.NullString, error) {
	if rule == nil {
		return sql.NullString{}, nil
	}
	raw, err := json.Marshal(rule)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(raw), Valid: true}, nil
}
