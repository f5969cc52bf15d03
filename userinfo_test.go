package waypoint_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waypoint"
)

func TestUserInfoValue(t *testing.T) {
	// Arrange
	u, err := waypoint.ParseValue(issuerOnly)
	require.Nil(t, err)

	// Act + Assert
	require.Equal(t, map[string]any{"iss": "my-issuer"}, u.Value())
	require.Equal(t, map[string]any{"iss": "my-issuer"}, map[string]any(u.Map()))
	require.Equal(t, "my-issuer", u.String("iss"))
	require.Zero(t, u.String("missing"))
}

func TestUserInfoNonObject(t *testing.T) {
	// Arrange
	u, err := waypoint.ParseValue(encode(`["my-issuer"]`))
	require.Nil(t, err)

	// Act + Assert
	require.Nil(t, u.Map())
	require.Zero(t, u.String("iss"))
	require.Equal(t, []any{"my-issuer"}, u.Value())
}

func TestUserInfoStringMistypedField(t *testing.T) {
	// Arrange
	u, err := waypoint.ParseValue(encode(`{"iat":1516239022}`))
	require.Nil(t, err)

	// Act + Assert
	require.Zero(t, u.String("iat"))
}

func TestNewContext(t *testing.T) {
	// Arrange
	u := waypoint.New(map[string]any{"sub": "my-subject"})

	// Act
	ctx := waypoint.NewContext(context.Background(), u)
	got, ok := waypoint.FromContext(ctx)

	// Assert
	require.True(t, ok)
	require.Equal(t, u, got)

	// Act
	got, ok = waypoint.FromContext(context.Background())

	// Assert
	require.False(t, ok)
	require.Zero(t, got.Value())
}
