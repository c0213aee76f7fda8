package outputs

// Template hints are embedded verbatim into the upstream generation prompt
// to describe the {type, value} shape the generator must produce. They are
// documentation for the generator, never parsed, and never consulted by the
// value predicates. The texts (including the pandas-flavored examples and
// their exact whitespace) are kept byte-for-byte compatible with the
// prompts existing deployments were tuned against.

const hintNumber = `type (must be "number"), value must int. Example: { "type": "number", "value": 125 }`

const hintString = `type (must be "string"), value must be string. Example: { "type": "string", "value": f"The highest salary is {highest_salary}." }`

const hintDataFrame = `type (must be "dataframe"), value must be pd.DataFrame or pd.Series. Example: { "type": "dataframe", "value": pd.DataFrame({...}) }`

const hintPlot = `type (must be "plot"), value must be string. Example: { "type": "plot", "value": "temp_chart.png" }`

const hintHighChart = `type (must be "highchart"), value must be highchart config. 
        Example: { "type": "highchart", "value": { chart: { type: 'line' }, 
        title: { text: 'Simple Line Chart' }, xAxis: { categories: ['Jan', 'Feb', 'Mar', 'Apr', 'May'] },
         yAxis: { title: { text: 'Value' } }, series: [{ name: 'Data Series 1', data: [10, 15, 7, 8, 12] }] } }`

const hintDefault = `type (possible values "string", "number", "dataframe", "plot"). Examples: { "type": "string", "value": f"The highest salary is {highest_salary}." } or { "type": "number", "value": 125 } or { "type": "dataframe", "value": pd.DataFrame({...}) } or { "type": "plot", "value": "temp_chart.png" }`

const hintChartDefault = `type (possible values "string", 
        "number", "dataframe", "highchart config").
         Examples: 
             { "type": "string", "value": f"The highest salary is {highest_salary}." } 
             or 
             { "type": "number", "value": 125 } 
             or 
             { "type": "dataframe", "value": pd.DataFrame({...}) } 
             or 
             { "type": "highchart", "value": { chart: { type: 'line' }, 
              title: { text: 'Simple Line Chart' },
              xAxis: { categories: ['Jan', 'Feb', 'Mar', 'Apr', 'May'] }, 
              yAxis: { title: { text: 'Value' } }, 
              series: [{ name: 'Data Series 1', data: [10, 15, 7, 8, 12] }] 
              }  
            or 
            { "type": "highchart", "value": {chart: {type: 'heatmap'},
            title: { text: 'Simple Heatmap Chart' },
            colorAxis: {
                stops: [
                    [0, '#4e79a7'], // Lightest color
                    [0.5, '#f28e2c'], // Middle color
                    [1, '#e15759'] // Darkest color
                ]
            },
            xAxis: {
                categories: ['Category 1', 'Category 2', 'Category 3'] // X-axis categories
            },
            yAxis: {
                categories: ['Label 1', 'Label 2', 'Label 3'], // Y-axis categories
                title: null
            },
            series: [{
                data: [
                    [0, 0, 10], // x, y, value
                    [0, 1, 20],
                    [0, 2, 30],
                    [1, 0, 40],
                    [1, 1, 50],
                    [1, 2, 60],
                    [2, 0, 70],
                    [2, 1, 80],
                    [2, 2, 90]
                ],
                dataLabels: {
                    enabled: true,
                    color: '#000000'
                }
            }]
            }
            or
        { "type": "highchart", "value": { chart: {type: 'bubble'},
          title: {text: 'Bubble Chart Example'},
        xAxis: {
        title: {
            text: 'X-axis'
        }
        },
        yAxis: {
            title: {
                text: 'Y-axis'
            }
        },
    series: [{
        data: [
            [9, 81, 63],
            [98, 5, 89],
            [51, 50, 73],
            [41, 22, 14],
            [58, 24, 20],
            [78, 37, 34]
        ]
    }]
         }  
    or 
    { "type": "highchart", "value": { chart: {type: 'pie'},
    title: { text: 'Simple Pie Chart' },
    series: [{
        data: [
            ['Chrome', 61.41],
            ['Firefox', 10.85],
            ['Edge', 4.67],
            ['Safari', 4.18],
            ['Other', 7.05]
        ]
    }]
    }}
    or
    {"type":"highchart","value":{    chart: {type: 'table'},
    title: {text: 'Table Example'},
    xAxis: {
        categories: ['Category 1', 'Category 2', 'Category 3']
    },
    yAxis: {
        visible: false
    },
    series: [{
        name: 'Label 1',
        data: [10, 20, 30]
    }, {
        name: 'Label 2',
        data: [40, 50, 60]
    }, {
        name: 'Label 3',
        data: [70, 80, 90]
    }]}  
    `
