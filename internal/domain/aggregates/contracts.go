package aggregates

// WriteTxOwnership says who opens and commits write transactions.
type WriteTxOwnership string

const (
	// WriteTxOwnedByAggregate: write methods run inside a transaction the aggregate begins itself.
	WriteTxOwnedByAggregate WriteTxOwnership = "aggregate_owned"
)

// ReadPolicy says which reads an aggregate exposes.
type ReadPolicy string

const (
	// ReadPolicyInvariantScoped exposes whole-aggregate reads only, loaded eagerly in one transaction.
	ReadPolicyInvariantScoped ReadPolicy = "invariant_scoped_reads"
	// ReadPolicyTableRepoQueries leaves filtered or partial reads to table repos.
	ReadPolicyTableRepoQueries ReadPolicy = "table_repo_queries"
)

type Contract struct {
	Name             string
	WriteTxOwnership WriteTxOwnership
	ReadPolicy       ReadPolicy
	Notes            string
}

// Aggregate is implemented by every aggregate and returns a stable contract.
type Aggregate interface {
	Contract() Contract
}

func (c Contract) RequiresAggregateOwnedTx() bool {
	return c.WriteTxOwnership == WriteTxOwnedByAggregate
}
