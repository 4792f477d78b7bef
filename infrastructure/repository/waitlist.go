// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/profit-calculator-api/infrastructure/database/postgres"
	"github.com/vfg2006/profit-calculator-api/internal/domain"
)

const (
	waitlistTable = "waitlist"
)

var waitlistColumns = []string{"id", "email", "source", "created_at"}

//go:generate mockgen -source=waitlist.go -destination=mocks/waitlist.go -package=mocks
type WaitlistRepository interface {
	// CreateEntry insere a inscrição; retorna nil quando o email já existe
	CreateEntry(entry *domain.WaitlistEntry) (*domain.WaitlistEntry, error)
	GetEntryByEmail(email string) (*domain.WaitlistEntry, error)
	ListEntries(filters *domain.WaitlistFilters) ([]*domain.WaitlistEntry, error)
	CountEntries(since *time.Time) (int, error)
}

type waitlistRepository struct {
	conn postgres.Queryer
}

func NewWaitlistRepository(conn postgres.Queryer) WaitlistRepository {
	return &waitlistRepository{
		conn: conn,
	}
}

func (r *waitlistRepository) CreateEntry(entry *domain.WaitlistEntry) (*domain.WaitlistEntry, error) {
	query, args, err := buildCreateEntryQuery(entry)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir insert da waitlist")
	}

	err = r.conn.QueryRow(query, args...).Scan(&entry.CreatedAt)
	if err == sql.ErrNoRows {
		// ON CONFLICT DO NOTHING não retorna linha
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao inserir inscrição na waitlist")
	}

	return entry, nil
}

func (r *waitlistRepository) GetEntryByEmail(email string) (*domain.WaitlistEntry, error) {
	query, args, err := squirrel.
		Select(waitlistColumns...).
		From(waitlistTable).
		Where(squirrel.Eq{"email": email}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta da waitlist")
	}

	var entry domain.WaitlistEntry
	err = r.conn.QueryRow(query, args...).Scan(
		&entry.ID,
		&entry.Email,
		&entry.Source,
		&entry.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar inscrição %s", email)
	}

	return &entry, nil
}

func (r *waitlistRepository) ListEntries(filters *domain.WaitlistFilters) ([]*domain.WaitlistEntry, error) {
	query, args, err := buildListEntriesQuery(filters)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta da waitlist")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar waitlist")
	}
	defer rows.Close()

	entries := make([]*domain.WaitlistEntry, 0)
	for rows.Next() {
		var entry domain.WaitlistEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.Email,
			&entry.Source,
			&entry.CreatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao processar inscrição")
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante iteração da waitlist")
	}

	return entries, nil
}

func (r *waitlistRepository) CountEntries(since *time.Time) (int, error) {
	query, args, err := buildCountEntriesQuery(since)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao construir contagem da waitlist")
	}

	var total int
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, errors.Wrap(err, "erro ao contar inscrições")
	}

	return total, nil
}

func buildCreateEntryQuery(entry *domain.WaitlistEntry) (string, []any, error) {
	return squirrel.
		Insert(waitlistTable).
		Columns("id", "email", "source").
		Values(entry.ID, entry.Email, entry.Source).
		Suffix("ON CONFLICT (email) DO NOTHING RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildListEntriesQuery(filters *domain.WaitlistFilters) (string, []any, error) {
	queryBuilder := squirrel.
		Select(waitlistColumns...).
		From(waitlistTable).
		OrderBy("created_at DESC", "id DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filters != nil {
		if filters.Since != nil {
			queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"created_at": *filters.Since})
		}
		if filters.Limit > 0 {
			queryBuilder = queryBuilder.Limit(uint64(filters.Limit))
		}
		if filters.Offset > 0 {
			queryBuilder = queryBuilder.Offset(uint64(filters.Offset))
		}
	}

	return queryBuilder.ToSql()
}

func buildCountEntriesQuery(since *time.Time) (string, []any, error) {
	queryBuilder := squirrel.
		Select("COUNT(*)").
		From(waitlistTable).
		PlaceholderFormat(squirrel.Dollar)

	if since != nil {
		queryBuilder = queryBuilder.Where(squirrel.Gt{"created_at": *since})
	}

	return queryBuilder.ToSql()
}
