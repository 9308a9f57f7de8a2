package thermal

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// 外皮全体
type Envelope struct {
	elements []Element     // 負荷集計に寄与する部位
	n_j      int           // 部位の数
	u_js     *mat.VecDense // 部位 j の熱貫流率, W/m2K, [j]
	a_js     *mat.VecDense // 部位 j の面積, m2, [j]
	h_br_js  *mat.VecDense // 部位 j の熱橋による熱損失係数, W/K, [j]
}

/*
部位の集合から外皮を作成する。

	Args:
		elements: 外皮の部位

	Notes:
		面積 0 または層構成が空の部位は除外する。
*/
func NewEnvelope(elements []Element) (*Envelope, error) {
	env := &Envelope{}
	for _, e := range elements {
		if e.contributes() {
			env.elements = append(env.elements, e)
		}
	}
	env.n_j = len(env.elements)
	if env.n_j == 0 {
		return env, nil
	}

	env.u_js = mat.NewVecDense(env.n_j, nil)
	env.a_js = mat.NewVecDense(env.n_j, nil)
	env.h_br_js = mat.NewVecDense(env.n_j, nil)
	for j, e := range env.elements {
		u, err := e.UValue()
		if err != nil {
			return nil, fmt.Errorf("element %d (%s): %w", j, e.Name, err)
		}
		h_br, err := e.BridgeCoefficient()
		if err != nil {
			return nil, err
		}
		env.u_js.SetVec(j, u)
		env.a_js.SetVec(j, e.Area)
		env.h_br_js.SetVec(j, h_br)
	}

	return env, nil
}

// 部位の数
func (env *Envelope) Len() int {
	return env.n_j
}

// 外皮面積の合計, m2
func (env *Envelope) Area() float64 {
	if env.n_j == 0 {
		return 0
	}
	return mat.Sum(env.a_js)
}

/*
貫流による熱損失係数 H_T を計算する。

	Returns:
		Σ U_j A_j, W/K
*/
func (env *Envelope) HeatLossCoefficient() float64 {
	if env.n_j == 0 {
		return 0
	}
	return mat.Dot(env.u_js, env.a_js)
}

// 熱橋を含む熱損失係数, W/K
func (env *Envelope) HeatLossCoefficientWithBridges() float64 {
	if env.n_j == 0 {
		return 0
	}
	return env.HeatLossCoefficient() + mat.Sum(env.h_br_js)
}

/*
面積加重平均の熱貫流率を計算する。

	Returns:
		平均熱貫流率, W/m2K
*/
func (env *Envelope) MeanUValue() float64 {
	if env.n_j == 0 {
		return 0
	}
	return stat.Mean(env.u_js.RawVector().Data, env.a_js.RawVector().Data)
}

// 部位ごとの熱貫流率, W/m2K, [j]
func (env *Envelope) UValues() []float64 {
	u := make([]float64, env.n_j)
	for j := 0; j < env.n_j; j++ {
		u[j] = env.u_js.AtVec(j)
	}
	return u
}

// 負荷集計に寄与する部位
func (env *Envelope) Elements() []Element {
	return append([]Element(nil), env.elements...)
}
