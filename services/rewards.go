package services

import (
	"github.com/ideahub-simple/models"
	"gorm.io/gorm"
)

// Reward schedule. The source history disagreed with itself about amounts,
// so the schedule is flat: every contribution credits the same two stars and
// deletion reverses exactly what was credited.
const (
	StarsIdeaCreation       = 2
	StarsSubIdeaCreation    = 2
	StarsProposalSubmission = 2
	StarsPrototypeCreation  = 2
)

// Idea counter columns, adjusted only through atomic relative updates.
const (
	counterTotalProposals  = "total_proposals"
	counterTotalPrototypes = "total_prototypes"
)

// creditStars adds stars to a user's balance inside the caller's transaction.
func creditStars(tx *gorm.DB, userID string, amount int) error {
	return tx.Model(&models.User{}).Where("id = ?", userID).
		UpdateColumn("stars_balance", gorm.Expr("stars_balance + ?", amount)).Error
}

// debitStars removes stars inside the caller's transaction, clamped at zero
// so the balance invariant survives historical schedule drift.
func debitStars(tx *gorm.DB, userID string, amount int) error {
	return tx.Model(&models.User{}).Where("id = ?", userID).
		UpdateColumn("stars_balance", gorm.Expr("GREATEST(stars_balance - ?, 0)", amount)).Error
}

// adjustIdeaCounter applies a relative delta to one of the idea's derived
// counters. Never read-modify-write: concurrent submissions must not lose
// updates.
func adjustIdeaCounter(tx *gorm.DB, ideaID, column string, delta int) error {
	if delta == 0 {
		return nil
	}
	expr := gorm.Expr(column+" + ?", delta)
	if delta < 0 {
		expr = gorm.Expr("GREATEST("+column+" - ?, 0)", -delta)
	}
	return tx.Model(&models.Idea{}).Where("id = ?", ideaID).
		UpdateColumn(column, expr).Error
}

// StarRefunds computes, per author, the stars to reverse when the given
// descendants are cascade deleted. Pure; the caller applies the result with
// debitStars inside the delete transaction.
func StarRefunds(subIdeas []models.SubIdea, proposals []models.Proposal, prototypes []models.Prototype) map[string]int {
	refunds := make(map[string]int)
	for _, s := range subIdeas {
		refunds[s.AuthorID] += StarsSubIdeaCreation
	}
	for _, p := range proposals {
		refunds[p.AuthorID] += StarsProposalSubmission
	}
	for _, p := range prototypes {
		refunds[p.AuthorID] += StarsPrototypeCreation
	}
	return refunds
}

// applyStarRefunds debits every author in the refund map.
func applyStarRefunds(tx *gorm.DB, refunds map[string]int) error {
	for authorID, amount := range refunds {
		if err := debitStars(tx, authorID, amount); err != nil {
			return err
		}
	}
	return nil
}
