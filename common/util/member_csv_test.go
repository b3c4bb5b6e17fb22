package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMemberCSV(t *testing.T) {
	input := strings.Join([]string{
		"KOALM,Name,House,Place,Post,District,Pincode,State,Club,Mobile,Email",
		`KOA-1001,Dr. A. Kumar,"Kumar Bhavan",Pattom,Thiruvananthapuram PO,Thiruvananthapuram,695004,Kerala,TVM Club,9847000001,a.kumar@example.com`,
		`,Nobody,,,,,,,,,`,
		`KOA-1002,Dr. B. Nair,Nair House,Edappally,Kochi PO,Ernakulam,682024,Kerala,Cochin Club,9847000002,b.nair@example.com`,
	}, "\n")

	members, skipped, err := ParseMemberCSV(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	require.Len(t, members, 2)

	first := members[0]
	assert.Equal(t, "KOA-1001", first.KoalmNumber)
	assert.Equal(t, "Dr. A. Kumar", first.Name)
	assert.Equal(t, "Kumar Bhavan", first.CommunicationAddress)
	assert.Equal(t, "Pattom Thiruvananthapuram PO", first.Address)
	assert.Equal(t, "Thiruvananthapuram", first.District)
	assert.Equal(t, "695004", first.Pincode)
	assert.Equal(t, "Kerala", first.State)
	assert.Equal(t, "TVM Club", first.DistrictClubName)
	assert.Equal(t, "9847000001", first.MobileNumber)
	assert.Equal(t, "a.kumar@example.com", first.Email)
	assert.True(t, first.IsActive)

	assert.Equal(t, "KOA-1002", members[1].KoalmNumber)
}

func TestParseMemberCSV_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "short row", input: "header\nKOA-1001,Dr. A. Kumar"},
		{name: "broken quoting", input: "header\n\"KOA-1001,unterminated"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := ParseMemberCSV(strings.NewReader(tc.input))
			assert.Error(t, err)
		})
	}
}

func TestParseMemberCSV_HeaderOnly(t *testing.T) {
	members, skipped, err := ParseMemberCSV(strings.NewReader("KOALM,Name\n"))

	require.NoError(t, err)
	assert.Empty(t, members)
	assert.Zero(t, skipped)
}
