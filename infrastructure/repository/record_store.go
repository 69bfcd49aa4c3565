package repository

import (
	"github.com/inpulse/inpulse-api/infrastructure/database/postgres"
)

// RecordStore reúne as consultas usadas pelo cálculo do dashboard
type RecordStore struct {
	SaleRepository
	CampaignRepository
	TaskRepository
	TeamRepository
}

func NewRecordStore(conn postgres.Queryer) *RecordStore {
	return &RecordStore{
		SaleRepository:     NewSaleRepository(conn),
		CampaignRepository: NewCampaignRepository(conn),
		TaskRepository:     NewTaskRepository(conn),
		TeamRepository:     NewTeamRepository(conn),
	}
}
