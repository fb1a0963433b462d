package devops

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSSM struct {
	values map[string]string
	input  *ssm.GetParameterInput
}

func (f *fakeSSM) GetParameter(_ context.Context, in *ssm.GetParameterInput, _ ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	f.input = in
	v, ok := f.values[aws.ToString(in.Name)]
	if !ok {
		return nil, errors.New("ParameterNotFound")
	}
	return &ssm.GetParameterOutput{Parameter: &types.Parameter{Value: aws.String(v)}}, nil
}

func TestGetParameter(t *testing.T) {
	client := &fakeSSM{values: map[string]string{"/attendance/config": "port: \"8080\"\n"}}

	value, err := GetParameter(context.Background(), client, "/attendance/config")
	require.NoError(t, err)
	assert.Equal(t, "port: \"8080\"\n", string(value))
	assert.True(t, aws.ToBool(client.input.WithDecryption))

	_, err = GetParameter(context.Background(), client, "/missing")
	assert.ErrorContains(t, err, "get parameter /missing")
}
