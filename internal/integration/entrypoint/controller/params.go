package controller

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-control/backend/internal/application/validator"
	domainerror "github.com/budget-control/backend/internal/domain/error"
	"github.com/budget-control/backend/internal/integration/entrypoint/dto"
)

// pathID validates the :id path parameter. On failure it writes 400 and returns false.
func pathID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := validator.ParseID(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return uuid.Nil, false
	}
	return id, true
}

// queryParser collects optional query parameters, keeping the first parse failure.
type queryParser struct {
	ctx *gin.Context
	err error
}

func newQueryParser(ctx *gin.Context) *queryParser {
	return &queryParser{ctx: ctx}
}

func (p *queryParser) raw(key string) (string, bool) {
	if p.err != nil {
		return "", false
	}
	value, ok := p.ctx.GetQuery(key)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

func (p *queryParser) text(key string) *string {
	value, ok := p.raw(key)
	if !ok {
		return nil
	}
	return &value
}

func (p *queryParser) date(key string) *time.Time {
	value, ok := p.raw(key)
	if !ok {
		return nil
	}
	date, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		p.err = domainerror.NewInvalidFieldError(key, "Invalid date format for "+key+", expected YYYY-MM-DD: "+value)
		return nil
	}
	return &date
}

func (p *queryParser) amount(key string) *decimal.Decimal {
	value, ok := p.raw(key)
	if !ok {
		return nil
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		p.err = domainerror.NewInvalidFieldError(key, "Invalid value provided for "+key+": "+value)
		return nil
	}
	return &amount
}

func (p *queryParser) flag(key string) *bool {
	value, ok := p.raw(key)
	if !ok {
		return nil
	}
	flag, err := strconv.ParseBool(value)
	if err != nil {
		p.err = domainerror.NewInvalidFieldError(key, "Invalid value provided for "+key+": "+value)
		return nil
	}
	return &flag
}

func (p *queryParser) id(key string) *uuid.UUID {
	value, ok := p.raw(key)
	if !ok {
		return nil
	}
	id, err := validator.ParseOptionalID(value)
	if err != nil {
		p.err = err
		return nil
	}
	return id
}

// parseQueryEnum resolves an enum-typed query parameter with parse.
func parseQueryEnum[T ~string](p *queryParser, key string, parse func(string) (T, error)) *T {
	value, ok := p.raw(key)
	if !ok {
		return nil
	}
	parsed, err := parse(value)
	if err != nil {
		p.err = err
		return nil
	}
	return &parsed
}

// Err returns the first parse failure.
func (p *queryParser) Err() error {
	return p.err
}
