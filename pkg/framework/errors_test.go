package framework

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAggregateEmpty(t *testing.T) {
	var errs AggregatedError
	errs.Add(nil, nil)
	require.NoError(t, errs.Aggregate())
}

func TestAggregateSingle(t *testing.T) {
	var errs AggregatedError
	sole := errors.New("broker unreachable")
	errs.Add(nil, sole)
	require.Equal(t, sole, errs.Aggregate())
}

func TestAggregateMultiple(t *testing.T) {
	var errs AggregatedError
	errs.Add(errors.New("broker unreachable"), errors.New("listen :8180: in use"))
	err := errs.Aggregate()
	require.Error(t, err)
	require.Equal(t, "2 errors: [broker unreachable] [listen :8180: in use]", err.Error())
}
