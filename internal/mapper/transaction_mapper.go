// Mapper for Transaction entity -> DTO conversion
package mapper

import (
	"finance-advisor-be/internal/dto"
	"finance-advisor-be/internal/entity"
)

type TransactionMapper struct{}

func NewTransactionMapper() *TransactionMapper {
	return &TransactionMapper{}
}

func (m *TransactionMapper) ToResponse(tx *entity.Transaction) *dto.TransactionResponse {
	if tx == nil {
		return nil
	}
	return &dto.TransactionResponse{
		Id:          tx.Id,
		Type:        string(tx.Type),
		Amount:      tx.Amount,
		Method:      tx.Method,
		Description: tx.Description,
		Date:        tx.Date,
	}
}

func (m *TransactionMapper) ToResponses(txs []*entity.Transaction) []*dto.TransactionResponse {
	out := make([]*dto.TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, m.ToResponse(tx))
	}
	return out
}
