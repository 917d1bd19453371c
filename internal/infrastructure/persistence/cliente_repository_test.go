package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/clientesvc/backend/internal/domain/cliente"
	"github.com/clientesvc/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockClienteRepository creates a GormClienteRepository with a mocked SQL connection
func newMockClienteRepository(t *testing.T) (*GormClienteRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	return NewGormClienteRepository(gormDB), mock, mockDB
}

func clienteRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "cpf", "nome", "data_nascimento", "renda_mensal",
		"score_credito", "aposentado", "profissao",
	})
}

func addClienteRow(rows *sqlmock.Rows, id int64, cpf, nome string) *sqlmock.Rows {
	return rows.AddRow(id, cpf, nome,
		time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC),
		decimal.RequireFromString("5000.00"), 750, false, "Desenvolvedor")
}

func TestGormClienteRepository_FindByID(t *testing.T) {
	t.Run("finds existing cliente", func(t *testing.T) {
		repo, mock, mockDB := newMockClienteRepository(t)
		defer mockDB.Close()

		rows := addClienteRow(clienteRows(), 1, "05960722445", "João Silva")

		mock.ExpectQuery(`SELECT \* FROM "clientes" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(int64(1), 1).
			WillReturnRows(rows)

		c, err := repo.FindByID(context.Background(), 1)

		assert.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, int64(1), c.ID)
		assert.Equal(t, "05960722445", c.CPF)
		assert.Equal(t, "João Silva", c.Nome)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found for missing cliente", func(t *testing.T) {
		repo, mock, mockDB := newMockClienteRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "clientes" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(int64(42), 1).
			WillReturnError(gorm.ErrRecordNotFound)

		c, err := repo.FindByID(context.Background(), 42)

		assert.Nil(t, c)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormClienteRepository_FindByCPF(t *testing.T) {
	t.Run("finds cliente by cpf", func(t *testing.T) {
		repo, mock, mockDB := newMockClienteRepository(t)
		defer mockDB.Close()

		rows := addClienteRow(clienteRows(), 7, "05960722445", "João Silva")

		mock.ExpectQuery(`SELECT \* FROM "clientes" WHERE cpf = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("05960722445", 1).
			WillReturnRows(rows)

		c, err := repo.FindByCPF(context.Background(), "05960722445")

		assert.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, int64(7), c.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found for unknown cpf", func(t *testing.T) {
		repo, mock, mockDB := newMockClienteRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "clientes" WHERE cpf = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("52998224725", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		c, err := repo.FindByCPF(context.Background(), "52998224725")

		assert.Nil(t, c)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormClienteRepository_ExistsByCPF(t *testing.T) {
	t.Run("returns true when cpf is registered", func(t *testing.T) {
		repo, mock, mockDB := newMockClienteRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "clientes" WHERE cpf = \$1`).
			WithArgs("05960722445").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.ExistsByCPF(context.Background(), "05960722445")

		assert.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns false when cpf is free", func(t *testing.T) {
		repo, mock, mockDB := newMockClienteRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "clientes" WHERE cpf = \$1`).
			WithArgs("52998224725").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		exists, err := repo.ExistsByCPF(context.Background(), "52998224725")

		assert.NoError(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormClienteRepository_FindByNome(t *testing.T) {
	t.Run("matches name fragment case-insensitively", func(t *testing.T) {
		repo, mock, mockDB := newMockClienteRepository(t)
		defer mockDB.Close()

		rows := addClienteRow(clienteRows(), 1, "05960722445", "João Silva")

		mock.ExpectQuery(`SELECT \* FROM "clientes" WHERE nome ILIKE \$1 ORDER BY id ASC`).
			WithArgs("%silva%").
			WillReturnRows(rows)

		clientes, err := repo.FindByNome(context.Background(), "silva")

		assert.NoError(t, err)
		require.Len(t, clientes, 1)
		assert.Equal(t, "João Silva", clientes[0].Nome)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns empty slice when nothing matches", func(t *testing.T) {
		repo, mock, mockDB := newMockClienteRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "clientes" WHERE nome ILIKE \$1 ORDER BY id ASC`).
			WithArgs("%ninguem%").
			WillReturnRows(clienteRows())

		clientes, err := repo.FindByNome(context.Background(), "ninguem")

		assert.NoError(t, err)
		assert.Empty(t, clientes)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormClienteRepository_FindByScoreBetween(t *testing.T) {
	t.Run("filters by inclusive score range", func(t *testing.T) {
		repo, mock, mockDB := newMockClienteRepository(t)
		defer mockDB.Close()

		rows := addClienteRow(clienteRows(), 1, "05960722445", "João Silva")

		mock.ExpectQuery(`SELECT \* FROM "clientes" WHERE score_credito BETWEEN \$1 AND \$2 ORDER BY id ASC`).
			WithArgs(700, 800).
			WillReturnRows(rows)

		clientes, err := repo.FindByScoreBetween(context.Background(), 700, 800)

		assert.NoError(t, err)
		assert.Len(t, clientes, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormClienteRepository_FindByAposentado(t *testing.T) {
	t.Run("filters by retirement status", func(t *testing.T) {
		repo, mock, mockDB := newMockClienteRepository(t)
		defer mockDB.Close()

		rows := addClienteRow(clienteRows(), 1, "05960722445", "João Silva")

		mock.ExpectQuery(`SELECT \* FROM "clientes" WHERE aposentado = \$1 ORDER BY id ASC`).
			WithArgs(false).
			WillReturnRows(rows)

		clientes, err := repo.FindByAposentado(context.Background(), false)

		assert.NoError(t, err)
		assert.Len(t, clientes, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormClienteRepository_FindByProfissao(t *testing.T) {
	t.Run("matches profession fragment", func(t *testing.T) {
		repo, mock, mockDB := newMockClienteRepository(t)
		defer mockDB.Close()

		rows := addClienteRow(clienteRows(), 1, "05960722445", "João Silva")

		mock.ExpectQuery(`SELECT \* FROM "clientes" WHERE profissao ILIKE \$1 ORDER BY id ASC`).
			WithArgs("%desenvolvedor%").
			WillReturnRows(rows)

		clientes, err := repo.FindByProfissao(context.Background(), "desenvolvedor")

		assert.NoError(t, err)
		assert.Len(t, clientes, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormClienteRepository_FindAll(t *testing.T) {
	t.Run("applies pagination and id ordering", func(t *testing.T) {
		repo, mock, mockDB := newMockClienteRepository(t)
		defer mockDB.Close()

		rows := addClienteRow(clienteRows(), 41, "05960722445", "João Silva")
		rows = rows.AddRow(int64(42), "52998224725", "Maria Souza",
			time.Date(1958, 3, 2, 0, 0, 0, 0, time.UTC),
			decimal.RequireFromString("3200.50"), 600, true, "Professora")

		mock.ExpectQuery(`SELECT \* FROM "clientes" ORDER BY id ASC LIMIT .* OFFSET .*`).
			WillReturnRows(rows)

		filter := shared.Filter{Page: 2, Size: 20}
		clientes, err := repo.FindAll(context.Background(), filter)

		assert.NoError(t, err)
		require.Len(t, clientes, 2)
		assert.Equal(t, int64(41), clientes[0].ID)
		assert.Equal(t, int64(42), clientes[1].ID)
		assert.True(t, clientes[1].Aposentado)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormClienteRepository_Count(t *testing.T) {
	t.Run("counts all clientes", func(t *testing.T) {
		repo, mock, mockDB := newMockClienteRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "clientes"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(57))

		count, err := repo.Count(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(57), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormClienteRepository_Save(t *testing.T) {
	t.Run("inserts new cliente and assigns id", func(t *testing.T) {
		repo, mock, mockDB := newMockClienteRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`INSERT INTO "clientes"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(10)))

		c := &cliente.Cliente{
			CPF:            "05960722445",
			Nome:           "João Silva",
			DataNascimento: cliente.NewDate(1990, 5, 15),
			RendaMensal:    decimal.RequireFromString("5000.00"),
			ScoreCredito:   750,
			Profissao:      "Desenvolvedor",
		}
		err := repo.Save(context.Background(), c)

		assert.NoError(t, err)
		assert.Equal(t, int64(10), c.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("updates existing cliente", func(t *testing.T) {
		repo, mock, mockDB := newMockClienteRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`UPDATE "clientes" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		c := &cliente.Cliente{
			ID:             10,
			CPF:            "05960722445",
			Nome:           "João Silva Atualizado",
			DataNascimento: cliente.NewDate(1990, 5, 15),
			RendaMensal:    decimal.RequireFromString("6000.00"),
			ScoreCredito:   800,
			Profissao:      "Arquiteto de Software",
		}
		err := repo.Save(context.Background(), c)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("translates unique violation to duplicate cpf error", func(t *testing.T) {
		repo, mock, mockDB := newMockClienteRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`INSERT INTO "clientes"`).
			WillReturnError(gorm.ErrDuplicatedKey)

		c := &cliente.Cliente{
			CPF:            "05960722445",
			Nome:           "João Silva",
			DataNascimento: cliente.NewDate(1990, 5, 15),
			RendaMensal:    decimal.RequireFromString("5000.00"),
			ScoreCredito:   750,
			Profissao:      "Desenvolvedor",
		}
		err := repo.Save(context.Background(), c)

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeDuplicateCPF, domainErr.Code)
		assert.Contains(t, domainErr.Message, "05960722445")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormClienteRepository_Delete(t *testing.T) {
	t.Run("deletes existing cliente", func(t *testing.T) {
		repo, mock, mockDB := newMockClienteRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`DELETE FROM "clientes" WHERE id = \$1`).
			WithArgs(int64(10)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), 10)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found when nothing was deleted", func(t *testing.T) {
		repo, mock, mockDB := newMockClienteRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`DELETE FROM "clientes" WHERE id = \$1`).
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), 99)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
