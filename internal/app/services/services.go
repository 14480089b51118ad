package services

// Services defined in this package:
// - AuthService: admin login and token issuing
// - CompanyService: company registry, cascading deletion
// - StudentService: student registry and preference lists
// - SlotService: interview slot lifecycle and booking invariants
// - MatchingService: greedy preference-ordered auto-assignment
// - ImportService: bulk import reconciliation
// - OfferService: offer status tracking per student/company pair
