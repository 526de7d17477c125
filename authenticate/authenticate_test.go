package authenticate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gospverify/spgraph/authenticate"
	"github.com/gospverify/spgraph/block"
	"github.com/gospverify/spgraph/certificate"
	"github.com/gospverify/spgraph/graphcore"
	"github.com/gospverify/spgraph/recognize"
)

func TestAuthenticate_Positive_RoundTripsWithRecognize(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	g, err := graphcore.New(4, edges)
	require.NoError(t, err)

	res, cert := block.Decompose(g)
	require.Nil(t, cert)

	tree, cert := recognize.Run(g, res)
	require.Nil(t, cert)
	require.NotNil(t, tree)

	ok, err := authenticate.Authenticate(g, &certificate.Positive{Tree: tree})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAuthenticate_K4_RoundTripsWithRecognize(t *testing.T) {
	edges := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	g, err := graphcore.New(4, edges)
	require.NoError(t, err)

	res, cert := block.Decompose(g)
	require.Nil(t, cert)

	_, negCert := recognize.Run(g, res)
	require.NotNil(t, negCert)

	ok, err := authenticate.Authenticate(g, negCert)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAuthenticate_K4_RejectsBogusVertex(t *testing.T) {
	edges := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	g, err := graphcore.New(4, edges)
	require.NoError(t, err)

	bad := &certificate.K4{A: 0, B: 1, C: 2, D: 9}
	ok, err := authenticate.Authenticate(g, bad)
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestAuthenticate_ThreeComponentCut_RoundTripsWithBlock(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 0}, {0, 3}, {3, 4}, {4, 0}}
	g, err := graphcore.New(5, edges)
	require.NoError(t, err)

	_, cert := block.Decompose(g)
	require.NotNil(t, cert)

	ok, err := authenticate.Authenticate(g, cert)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAuthenticate_ThreeComponentCut_RejectsWrongVertex(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 0}, {0, 3}, {3, 4}, {4, 0}}
	g, err := graphcore.New(5, edges)
	require.NoError(t, err)

	ok, err := authenticate.Authenticate(g, &certificate.ThreeComponentCut{V: 1})
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestAuthenticate_NilCertificate(t *testing.T) {
	g, err := graphcore.New(1, nil)
	require.NoError(t, err)
	ok, err := authenticate.Authenticate(g, nil)
	assert.False(t, ok)
	assert.ErrorIs(t, err, authenticate.ErrNilCertificate)
}
