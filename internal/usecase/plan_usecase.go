package usecase

import (
	"casaok/internal/domain/entity"
	apperrors "casaok/pkg/errors"
)

type PlanUseCase struct{}

func NewPlanUseCase() *PlanUseCase {
	return &PlanUseCase{}
}

// The plan table is static. Checkout happens on the external payment link;
// the API never processes payments.
var plans = []entity.Plan{
	{
		ID:          entity.PlanEssencial,
		Name:        "Essencial",
		Description: "Para quem quer manter o imóvel sempre em ordem, com suporte rápido para pequenos reparos e manutenção preventiva básica.",
		Price:       199.00,
		Visits:      "2 visitas mensais",
		PaymentLink: "https://pag.ae/819uAsiG6",
		IncludedServices: []string{
			"Troca de resistência de chuveiro",
			"Troca de sifão ou reparo de torneira",
			"Desobstrução leve de pia ou ralo",
			"Ajuste de portas e fechaduras",
			"Troca de tomadas, interruptores ou lâmpadas",
			"Reaperto de descargas (válvula Hydra ou caixa acoplada)",
			"Reparo de rejunte em pequenos trechos",
			"Aplicação de silicone em box ou pia",
			"Vistoria simples do imóvel (infiltrações, vazamentos, calhas e telhas)",
		},
		QuoteOnly: []string{
			"Pintura, elétrica complexa, hidráulica estrutural, telhado, gesso, ar-condicionado, jardinagem e limpeza pós-obra.",
		},
		TicketLimit: 2,
		Active:      true,
	},
	{
		ID:          entity.PlanCompleto,
		Name:        "Completo",
		Description: "Ideal para quem busca mais tranquilidade e quer resolver tanto reparos simples quanto melhorias estéticas e funcionais.",
		Price:       299.00,
		Visits:      "3 visitas mensais",
		PaymentLink: "https://pag.ae/819uDLNEo",
		IncludedServices: []string{
			"Todos os serviços do Plano Essencial",
			"Retoque de pintura em pequenas áreas",
			"Reparo em tomadas e fiação leve",
			"Substituição de chuveiro, torneira ou válvula de descarga",
			"Troca de ralos, sifões e registros",
			"Ajuste de calhas e rufos",
			"Reparo de rejunte e silicone em áreas molhadas",
			"Revisão de telhas e calhas após chuva forte",
			"Instalação de suportes, prateleiras e pequenos acessórios",
		},
		QuoteOnly: []string{
			"Ar-condicionado, jardinagem, limpeza pós-obra, gesso, reformas amplas e marcenaria.",
		},
		TicketLimit: 3,
		Active:      true,
	},
	{
		ID:          entity.PlanSuperPremium,
		Name:        "Super Premium",
		Description: "Para quem quer cobertura total, com prioridade máxima de atendimento e acompanhamento técnico especializado.",
		Price:       399.00,
		Visits:      "4 chamados mensais",
		PaymentLink: "https://pag.ae/819uLgcsS",
		IncludedServices: []string{
			"Todos os serviços do Plano Completo",
			"Troca de luminárias ou instalação de spots",
			"Reparo de drywall ou forro de PVC",
			"Inspeção de telhado e vedação",
			"Manutenção de portas, janelas e fechaduras",
			"Reparo ou substituição de válvula de descarga",
			"Atendimento emergencial (vazamentos, curtos, infiltrações leves)",
		},
		QuoteOnly: []string{
			"Qualquer serviço fora da lista acima ou além dos 4 chamados mensais.",
		},
		TicketLimit: 4,
		Active:      true,
	},
}

func (uc *PlanUseCase) ListPlans() []entity.Plan {
	return plans
}

func (uc *PlanUseCase) GetPlan(id string) (*entity.Plan, error) {
	for i := range plans {
		if plans[i].ID == id {
			return &plans[i], nil
		}
	}
	return nil, apperrors.NotFound("Plan", nil)
}
