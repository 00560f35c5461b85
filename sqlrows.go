package iterkit

import (
	"io"
)

// SQLRows turns a sql.Rows-like result set into a failable single-use sequence.
// It allows you to use the same iteration pattern with SQL query results,
// to do dynamic filtering or mapping on them with the package's combinators,
// and it makes testing of row consumption easier with the SQLRowsLike interface.
func SQLRows[T any](rows SQLRowsLike, mapper SQLRowMapper[T]) SingleUseErrSeq[T] {
	return FromPullIter[T](&sqlRowsIter[T]{rows: rows, mapper: mapper})
}

// SQLRowsLike is the structural interface of *sql.Rows that SQLRows depends on.
type SQLRowsLike interface {
	io.Closer
	Next() bool
	Err() error
	Scan(dest ...any) error
}

// SQLRowScanner is the part of the row result that a mapper can use to retrieve the column values.
type SQLRowScanner interface {
	Scan(dest ...any) error
}

// SQLRowMapper maps the current row of the result set into a value.
type SQLRowMapper[T any] interface {
	Map(s SQLRowScanner) (T, error)
}

// SQLRowMapperFunc enables an anonymous function to act as a SQLRowMapper.
type SQLRowMapperFunc[T any] func(SQLRowScanner) (T, error)

func (fn SQLRowMapperFunc[T]) Map(s SQLRowScanner) (T, error) { return fn(s) }

type sqlRowsIter[T any] struct {
	rows   SQLRowsLike
	mapper SQLRowMapper[T]

	value T
	err   error
}

func (i *sqlRowsIter[T]) Next() bool {
	if i.err != nil {
		return false
	}
	if !i.rows.Next() {
		return false
	}
	v, err := i.mapper.Map(i.rows)
	if err != nil {
		i.err = err
		return false
	}
	i.value = v
	return true
}

func (i *sqlRowsIter[T]) Value() T {
	return i.value
}

func (i *sqlRowsIter[T]) Err() error {
	if i.err != nil {
		return i.err
	}
	return i.rows.Err()
}

func (i *sqlRowsIter[T]) Close() error {
	return i.rows.Close()
}
