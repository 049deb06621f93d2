// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package controller

import (
	ametrics "github.com/ava-labs/avalanchego/api/metrics"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/apocnetwork/extractorvm/consts"
)

type metrics struct {
	initContract   prometheus.Counter
	setVersion     prometheus.Counter
	setRewardToken prometheus.Counter

	createStake prometheus.Counter
	cancelStake prometheus.Counter

	claim   prometheus.Counter
	deposit prometheus.Counter
}

func newMetrics(gatherer ametrics.MultiGatherer) (*metrics, error) {
	m := &metrics{
		initContract: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "actions",
			Name:      "init_contract",
			Help:      "number of init contract actions",
		}),
		setVersion: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "actions",
			Name:      "set_version",
			Help:      "number of set version actions",
		}),
		setRewardToken: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "actions",
			Name:      "set_reward_token",
			Help:      "number of set reward token actions",
		}),
		createStake: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "actions",
			Name:      "create_stake",
			Help:      "number of create stake actions",
		}),
		cancelStake: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "actions",
			Name:      "cancel_stake",
			Help:      "number of cancel stake actions",
		}),
		claim: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "actions",
			Name:      "claim",
			Help:      "number of claim actions",
		}),
		deposit: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "actions",
			Name:      "deposit",
			Help:      "number of deposit actions",
		}),
	}
	r := prometheus.NewRegistry()
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.initContract),
		r.Register(m.setVersion),
		r.Register(m.setRewardToken),

		r.Register(m.createStake),
		r.Register(m.cancelStake),

		r.Register(m.claim),
		r.Register(m.deposit),
		gatherer.Register(consts.Name, r),
	)
	return m, errs.Err
}
