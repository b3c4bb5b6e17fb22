package public_controller

import (
	membermodel "github.com/sunthewhat/koa-member-api/api/model/memberModel"
)

// PublicController serves the unauthenticated member profile the badge scan
// code points to
type PublicController struct {
	memberRepo membermodel.IMemberRepository
}

// NewPublicController creates a new public controller with injected dependencies
func NewPublicController(memberRepo membermodel.IMemberRepository) *PublicController {
	return &PublicController{memberRepo: memberRepo}
}
