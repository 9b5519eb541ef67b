// Package model defines the data structures for tumor sequencing simulation.
package model

// MutationType represents the clonal origin of a simulated variant.
type MutationType string

const (
	// MutationFounder marks variants present in every subclone.
	MutationFounder MutationType = "founder"
	// MutationShared marks variants present in a strict subset of subclones.
	MutationShared MutationType = "shared"
	// MutationPrivate marks variants unique to one subclone.
	MutationPrivate MutationType = "private"
	// MutationGermline marks inherited variants present in tumor and normal cells.
	MutationGermline MutationType = "germline"
)

// GermlineCloneIDs is the clone-membership token stored on germline records.
const GermlineCloneIDs = "germline"

// Autosomes are the synthetic chromosome labels assigned to records.
var Autosomes = []string{
	"chr1", "chr2", "chr3", "chr4", "chr5", "chr6", "chr7", "chr8",
	"chr9", "chr10", "chr11", "chr12", "chr13", "chr14", "chr15", "chr16",
	"chr17", "chr18", "chr19", "chr20", "chr21", "chr22",
}

// Nucleotides are the base symbols for reference/alternate assignment.
var Nucleotides = []string{"A", "C", "G", "T"}

// MaxPosition bounds the synthetic genomic position range (1..MaxPosition).
// Positions are cosmetic; the range just has to look chromosome-sized.
const MaxPosition = 100_000_000

// MutationRecord is one simulated variant with its true and observed state.
//
// Ref and Alt are drawn independently and may coincide; VCF-style consumers
// filter those rows, the core does not.
type MutationRecord struct {
	ID         string
	Chrom      string
	Pos        int
	Ref        string
	Alt        string
	TrueVAF    float64
	VAF        float64
	Depth      int
	AltReads   int
	RefReads   int
	CloneLabel string
	Type       MutationType
	CloneIDs   string
}
