package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sergioortiz17/devtools-backend/internal/errs"
)

var (
	uniqueKeyRegex        = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)
	sqliteConstraintRegex = regexp.MustCompile(`constraint failed: ([A-Za-z0-9_]+)\.([A-Za-z0-9_]+)`)
	sqliteIndexRegex      = regexp.MustCompile(`constraint failed: index '([^']+)'`)
)

// ErrCode classifies err and reports its Code, or Other for non-database errors.
func ErrCode(err error) Code {
	if sqlErr := Classify(err); sqlErr != nil {
		return sqlErr.Code
	}
	return Other
}

// Classify converts a raw driver error into an *Error.
// It returns nil when err comes from neither pgx nor go-sqlite3.
func Classify(err error) *Error {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ConvertPgError(pgErr)
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return ConvertSqliteError(liteErr)
	}

	return nil
}

// IsUniqueViolation reports whether err is a unique constraint violation
// from either supported driver.
func IsUniqueViolation(err error) bool {
	sqlErr := Classify(err)
	return sqlErr != nil && sqlErr.Code == UniqueViolation
}

// ConvertPgError converts a raw Postgres error into an *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// ConvertSqliteError converts a go-sqlite3 error into an *Error.
//
// SQLite reports table and column only inside the message text
// ("UNIQUE constraint failed: table.column"), so they are parsed from there.
func ConvertSqliteError(src sqlite3.Error) *Error {
	code := Other
	switch src.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		code = UniqueViolation
	case sqlite3.ErrConstraintNotNull:
		code = NotNullViolation
	case sqlite3.ErrConstraintForeignKey:
		code = ForeignKeyViolation
	case sqlite3.ErrConstraintCheck:
		code = CheckViolation
	}
	if code == Other && (src.Code == sqlite3.ErrCantOpen || src.Code == sqlite3.ErrNotADB) {
		code = ConnectionFailure
	}

	message := src.Error()
	sqlErr := &Error{
		Code:         code,
		Severity:     SeverityError,
		DatabaseCode: fmt.Sprintf("%d", int(src.ExtendedCode)),
		Message:      message,
		driverErr:    src,
	}

	if m := sqliteConstraintRegex.FindStringSubmatch(message); len(m) == 3 {
		sqlErr.TableName = m[1]
		sqlErr.ColumnName = m[2]
	}
	if m := sqliteIndexRegex.FindStringSubmatch(message); len(m) == 2 {
		sqlErr.ConstraintName = m[1]
	}

	return sqlErr
}

// generateErrorCode builds a machine-friendly code of the form <DOMAIN>_<ACTION>.
//
// Example:
//
//	dictionary_entries + UniqueViolation => DICTIONARY_ENTRIE_ALREADY_EXISTS
//
// Singularization only strips a trailing S.
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(tableName)
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// formatUserFriendlyMessage produces the client-facing message for a classified error.
func formatUserFriendlyMessage(sqlErr *Error) string {
	entityName := getEntityName(sqlErr.TableName, sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entityName)

	case UniqueViolation:
		// "identifier" is replaced by the column name when it can be inferred.
		return fmt.Sprintf("A %s with this identifier already exists", entityName)

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	default:
		return "An error occurred while processing your request"
	}
}

// getEntityName infers an entity name from the column ("user_id" -> "User"),
// then the table, then falls back to "record".
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		entity := strings.TrimSuffix(strings.ToLower(columnName), "_id")
		return humanizeText(entity)
	}

	if tableName != "" {
		entity := tableName
		if strings.HasSuffix(entity, "s") && len(entity) > 1 {
			entity = entity[:len(entity)-1]
		}
		return humanizeText(entity)
	}

	return "record"
}

// humanizeText converts snake_case into Title Case: "first_name" -> "First Name".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// extractColumnForUniqueViolation infers the column from a unique constraint name.
//
// Supported conventions:
//
//  1. "unique_<table>_<column>"       unique_users_email -> "email"
//  2. "<table>_<column>_(key|ukey)"   users_email_key    -> "email"
//  3. "idx_<table>_<column>_lower"    idx_dictionary_entries_word_lower -> "word"
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	if strings.HasPrefix(constraintName, "idx_") && strings.HasSuffix(constraintName, "_lower") {
		parts := strings.Split(strings.TrimSuffix(constraintName, "_lower"), "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	matches := uniqueKeyRegex.FindStringSubmatch(constraintName)
	if len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// HandleError converts a low-level database error into an *errs.HTTPError.
//
//   - *errs.HTTPError: returned unchanged
//   - classified driver errors: 400 (constraint violations) or 500
//   - ErrNoRows: 404
//   - anything else: 500
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	if sqlErr := Classify(err); sqlErr != nil {
		errorCode := generateErrorCode(sqlErr.TableName, sqlErr.Code)
		userMessage := formatUserFriendlyMessage(sqlErr)

		switch sqlErr.Code {
		case ForeignKeyViolation:
			return errs.NewBadRequestError(userMessage, false, &errorCode, nil)

		case UniqueViolation:
			columnName := sqlErr.ColumnName
			if columnName == "" {
				columnName = extractColumnForUniqueViolation(sqlErr.ConstraintName)
			}
			if columnName != "" {
				userMessage = strings.ReplaceAll(userMessage, "identifier", humanizeText(columnName))
			}
			return errs.NewConflictError(userMessage, true, &errorCode)

		case NotNullViolation:
			fieldErrors := []errs.FieldError{
				{
					Field: strings.ToLower(sqlErr.ColumnName),
					Error: "is required",
				},
			}
			return errs.NewBadRequestError(userMessage, true, &errorCode, fieldErrors)

		case CheckViolation:
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil)

		default:
			return errs.NewInternalServerError()
		}
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return errs.NewInternalServerError()
}
