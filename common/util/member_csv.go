package util

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sunthewhat/koa-member-api/type/shared/model"
)

const memberCSVColumns = 11

// ParseMemberCSV reads the member directory export. The first row is a
// header. Rows without a KOALM number are skipped and counted.
func ParseMemberCSV(r io.Reader) ([]*model.Member, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var members []*model.Member
	skipped := 0

	for line := 1; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, skipped, fmt.Errorf("line %d: %w", line, err)
		}
		if line == 1 {
			continue
		}
		if len(row) < memberCSVColumns {
			return nil, skipped, fmt.Errorf("line %d: expected %d columns, got %d", line, memberCSVColumns, len(row))
		}

		koalm := strings.TrimSpace(row[0])
		if koalm == "" {
			skipped++
			continue
		}

		members = append(members, &model.Member{
			KoalmNumber:          koalm,
			Name:                 strings.TrimSpace(row[1]),
			CommunicationAddress: strings.TrimSpace(row[2]),
			Address:              strings.TrimSpace(row[3] + " " + row[4]),
			District:             strings.TrimSpace(row[5]),
			Pincode:              strings.TrimSpace(row[6]),
			State:                strings.TrimSpace(row[7]),
			DistrictClubName:     strings.TrimSpace(row[8]),
			MobileNumber:         strings.TrimSpace(row[9]),
			Email:                strings.TrimSpace(row[10]),
			IsActive:             true,
		})
	}

	return members, skipped, nil
}
