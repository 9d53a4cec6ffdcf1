// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package to

import (
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/stretchr/testify/assert"
)

func TestValOrZero(t *testing.T) {
	t.Parallel()

	t.Run("nil pointer returns zero value", func(t *testing.T) {
		t.Parallel()
		var sp *string
		assert.Equal(t, "", ValOrZero(sp))
		var ip *int32
		assert.Equal(t, int32(0), ValOrZero(ip))
	})

	t.Run("non-nil pointer returns pointed value", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "westeurope", ValOrZero(to.Ptr("westeurope")))
		assert.Equal(t, int32(40), ValOrZero(to.Ptr[int32](40)))
	})
}

func TestVals(t *testing.T) {
	t.Parallel()
	in := []*string{to.Ptr("a"), nil, to.Ptr("b")}
	assert.Equal(t, []string{"a", "b"}, Vals(in))
	assert.Empty(t, Vals[string](nil))
}
